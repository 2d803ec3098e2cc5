package leadbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and be easy to merge into a profile.

// ImportEntries imports daily entries from 'r' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object representing
// one daily entry: the flat record of the eleven counters plus the date and
// the optional discard reason, without the profile file's command
// discriminator. Counters absent from a line default to zero.
func ImportEntries(r io.Reader) ([]DailyEntry, error) {
	var entries []DailyEntry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var e DailyEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("cannot parse line for entry import format: %q: %w", string(line), err)
		}
		if e.Date.IsZero() {
			return nil, fmt.Errorf("entry import line without a date: %q", string(line))
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return entries, nil
}

// ExportEntries exports the entries to 'w' in the import/export format.
func ExportEntries(w io.Writer, entries []DailyEntry) error {
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal entry on %s: %w", e.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write entry on %s: %w", e.Date, err)
		}
	}
	return nil
}
