package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/malonaz/bugtrace/internal/configuration"
	"github.com/malonaz/bugtrace/tracecmd"
)

const configFilepath = "~/.config/bugtrace/config.json"

func main() {
	config, err := configuration.Parse(configFilepath)
	cobra.CheckErr(err)

	rootCmd := tracecmd.NewRootCmd(config)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
