package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestSeparator(t *testing.T) {
	buffer := &bytes.Buffer{}
	Separator(buffer)
	require.Equal(t, strings.Repeat("-", Width())+"\n", buffer.String())
}

func TestTitle(t *testing.T) {
	buffer := &bytes.Buffer{}
	Title(buffer, "%d entries", 3)
	line := strings.TrimSuffix(buffer.String(), "\n")
	require.Contains(t, line, "      3 entries      ")
	require.GreaterOrEqual(t, len(line), len("      3 entries      "))
}

func TestEntryParts(t *testing.T) {
	buffer := &bytes.Buffer{}
	Timestamp(buffer, "2026-10-18T09:30:15.123456")
	Hypothesis(buffer, " H1")
	Location(buffer, " loc1")
	Data(buffer, ` {"x":1}`)
	require.Equal(t, `2026-10-18T09:30:15.123456 H1 loc1 {"x":1}`, buffer.String())
}

func TestQueryUserWithoutTerminal(t *testing.T) {
	stdout := &bytes.Buffer{}
	confirm, err := QueryUser(strings.NewReader("y\n"), stdout, "Clear?")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotTerminal))
	require.False(t, confirm)
	require.Empty(t, stdout.String())

	// A pipe has a file descriptor but is not a terminal.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	confirm, err = QueryUser(r, w, "Clear?")
	require.True(t, errors.Is(err, ErrNotTerminal))
	require.False(t, confirm)
}
