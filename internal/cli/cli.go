package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/buger/goterm"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

const defaultWidth = 80

var (
	// Colors for the parts of a trace entry.
	timestampColor  = color.New(color.FgHiBlack)             // Dark grey for timestamps
	hypothesisColor = color.New(color.FgMagenta, color.Bold) // Bold magenta for hypotheses
	locationColor   = color.New(color.FgGreen)               // Green for code locations
	dataColor       = color.New(color.FgCyan)                // Cyan for payloads
	titleColor      = color.New(color.FgMagenta, color.Bold) // Bold magenta for titles
	separatorColor  = color.New(color.FgHiBlack)             // Dark grey for separators
	warningColor    = color.New(color.FgYellow)              // Yellow for warnings
)

// Width of the terminal, or a default when stdout is not one.
func Width() int {
	width := goterm.Width()
	if width <= 0 {
		return defaultWidth
	}
	return width
}

// Separator printed to w.
func Separator(w io.Writer) {
	separatorColor.Fprintln(w, strings.Repeat("-", Width()))
}

// Title printed to w.
func Title(w io.Writer, text string, args ...any) {
	width := Width()
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := max((width-len(title))/2, 0)
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", max(width-len(title)-len(separator1), 0))
	titleColor.Fprintf(w, "%s%s%s\n", separator1, title, separator2)
}

// Timestamp printed to w.
func Timestamp(w io.Writer, text string) {
	timestampColor.Fprint(w, text)
}

// Hypothesis printed to w.
func Hypothesis(w io.Writer, text string) {
	hypothesisColor.Fprint(w, text)
}

// Location printed to w.
func Location(w io.Writer, text string) {
	locationColor.Fprint(w, text)
}

// Data printed to w.
func Data(w io.Writer, text string) {
	dataColor.Fprint(w, text)
}

// Warning printed to w.
func Warning(w io.Writer, text string, args ...any) {
	warningColor.Fprintf(w, text, args...)
}

// ErrNotTerminal is returned by QueryUser when it cannot prompt interactively.
var ErrNotTerminal = errors.New("not a terminal")

// QueryUser a yes/no question on in and out, which must be a terminal.
func QueryUser(in io.Reader, out io.Writer, question string) (bool, error) {
	stdin, ok := in.(terminal.FileReader)
	if !ok || !isatty.IsTerminal(stdin.Fd()) {
		return false, errors.Wrap(ErrNotTerminal, "stdin")
	}
	stdout, ok := out.(terminal.FileWriter)
	if !ok {
		return false, errors.Wrap(ErrNotTerminal, "stdout")
	}
	surveyQuestion := &survey.Confirm{
		Message: question,
	}
	confirm := false
	if err := survey.AskOne(surveyQuestion, &confirm, survey.WithStdio(stdin, stdout, out)); err != nil {
		return false, errors.Wrap(err, "asking user")
	}
	return confirm, nil
}
