package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	buffer := &bytes.Buffer{}
	NewLogger(buffer, true).Debug("probing log file", "path", "/tmp/debug.log")
	require.Contains(t, buffer.String(), "probing log file")
	require.Contains(t, buffer.String(), "path=/tmp/debug.log")

	buffer.Reset()
	NewLogger(buffer, false).Error("dropped")
	require.Empty(t, buffer.String())
}
