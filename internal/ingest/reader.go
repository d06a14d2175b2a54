// Package ingest reads combat-log event streams from report exports.
// The engine itself never does I/O; everything here is boundary plumbing.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

// report is the envelope shape produced by the analytics backend export.
type report struct {
	Events []core.Event `json:"events"`
}

// ReadFile reads events from a JSON file, either a bare array of events or
// a report envelope `{"events": [...]}`.
func ReadFile(path string) ([]core.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file '%s': %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	events, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading log file '%s': %w", path, err)
	}
	return events, nil
}

// Read decodes an event stream from r. Events keep their stream order;
// unknown event types are kept as-is since conditions may care about them.
func Read(r io.Reader) ([]core.Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty event stream")
	}

	if trimmed[0] == '[' {
		var events []core.Event
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, fmt.Errorf("decoding event array: %w", err)
		}
		return events, nil
	}

	var rep report
	if err := json.Unmarshal(trimmed, &rep); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	if rep.Events == nil {
		return nil, fmt.Errorf("report has no 'events' field")
	}
	return rep.Events, nil
}
