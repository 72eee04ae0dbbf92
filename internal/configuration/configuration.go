package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/pkg/errors"

	"github.com/malonaz/bugtrace/internal/file"
)

var defaultConfig = Config{
	Directory: "",
	Filename:  "debug.log",
	Verbose:   false,
}

// Config holds configuration for the bugtrace tool.
type Config struct {
	// The directory holding the log file. Empty means `tmp` under the working directory.
	Directory string `json:"directory"`
	// The log filename.
	Filename string `json:"filename"`
	// Print swallowed failures to stderr.
	Verbose bool `json:"verbose"`
}

// Default returns a copy of the default configuration.
func Default() *Config {
	config := defaultConfig
	return &config
}

// Parse a configuration file, creating it with defaults if it does not exist.
// Fields missing from the file keep their default values.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}
	if err := mergo.Merge(config, defaultConfig); err != nil {
		return nil, errors.Wrap(err, "merging default config")
	}

	expandedDirectoryPath, err := file.ExpandPath(config.Directory)
	if err != nil {
		return nil, errors.Wrap(err, "expanding log directory path")
	}
	config.Directory = expandedDirectoryPath
	return config, nil
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	err = os.WriteFile(path, bytes, 0644)
	if err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	exists, err := file.Exists(path)
	if err != nil {
		return errors.Wrap(err, "checking configuration")
	}
	if exists {
		return nil
	}

	// Create the directories.
	dir, _ := filepath.Split(path)
	if err := file.CreateDirectoryIfNotExist(dir); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}
