package debuglog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// TimestampLayout is the local-time layout of Entry.Timestamp: ISO-8601 with microseconds and no zone.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Entry is one line of the debug log.
type Entry struct {
	// Wall-clock local time of the trace call, formatted with TimestampLayout.
	Timestamp string `json:"t"`
	// The hypothesis under test, e.g. "H1".
	Hypothesis string `json:"h"`
	// The code location or context label, e.g. "processOrder:entry".
	Location string `json:"loc"`
	// Any JSON value, null when absent.
	Data any `json:"data"`
}

// Time parses the entry timestamp in the local timezone.
func (e *Entry) Time() (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, e.Timestamp, time.Local)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parsing timestamp")
	}
	return t, nil
}

// marshalLine serializes the entry as a single JSON line terminated by a newline.
func (e *Entry) marshalLine() ([]byte, error) {
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	// Encode appends the trailing newline.
	if err := encoder.Encode(e); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Entries reads the log file and decodes every non-empty line, in file order.
// A missing file holds no entries.
func (l *Logger) Entries() ([]*Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Entry{}, nil
		}
		return nil, errors.Wrap(err, "opening log file")
	}
	defer f.Close()

	entries := []*Entry{}
	reader := bufio.NewReader(f)
	for lineNumber := 1; ; lineNumber++ {
		// Lines have no length limit; a final line may lack its newline.
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "reading log file")
		}
		if line = bytes.TrimSpace(line); len(line) > 0 {
			entry := &Entry{}
			if err := json.Unmarshal(line, entry); err != nil {
				return nil, errors.Wrapf(err, "decoding line %d", lineNumber)
			}
			entries = append(entries, entry)
		}
		if err == io.EOF {
			break
		}
	}
	return entries, nil
}
