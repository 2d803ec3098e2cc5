package leadbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// CommandType is a typed string identifying the kind of a profile file line.
type CommandType string

// Command types used in profile files.
const (
	CmdProfile CommandType = "profile"
	CmdEntry   CommandType = "entry"
)

// profileCmd is a specialized struct for the profile header line.
type profileCmd struct {
	Command          CommandType `json:"command"`
	BrokerName       string      `json:"brokerName"`
	InitialLeads     int         `json:"initialLeads"`
	MonthlySalesGoal *int        `json:"monthlySalesGoal,omitempty"`
}

// entryCmd is a specialized struct for entry lines.
type entryCmd struct {
	Command CommandType `json:"command"`
	DailyEntry
}

// DecodeProfile decodes a broker profile from a stream of JSONL data: one
// "profile" header line plus any number of "entry" lines, in any order.
// Later lines for the same date replace earlier ones.
func DecodeProfile(r io.Reader) (*BrokerProfile, error) {
	p := NewBrokerProfile("", 0)
	var header bool
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Command {
		case CmdProfile:
			var temp profileCmd
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("could not decode profile line: %w", err)
			}
			p.BrokerName = temp.BrokerName
			p.InitialLeads = temp.InitialLeads
			p.MonthlySalesGoal = temp.MonthlySalesGoal
			header = true
		case CmdEntry:
			var temp entryCmd
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("could not decode entry line: %w", err)
			}
			if temp.Date.IsZero() {
				return nil, fmt.Errorf("entry line without a date: %q", string(lineBytes))
			}
			p.Upsert(temp.DailyEntry)
		default:
			return nil, fmt.Errorf("unknown profile command: %q", identifier.Command)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("profile stream has no %q header line", CmdProfile)
	}
	return p, nil
}

// EncodeEntry marshals a single entry line and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEntry(w io.Writer, e DailyEntry) error {
	data, err := json.Marshal(entryCmd{Command: CmdEntry, DailyEntry: e})
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeProfile persists a broker profile to an io.Writer in JSONL format:
// the header line first, then the entries sorted ascending by date for
// canonical output.
func EncodeProfile(w io.Writer, p *BrokerProfile) error {
	header := profileCmd{
		Command:          CmdProfile,
		BrokerName:       p.BrokerName,
		InitialLeads:     p.InitialLeads,
		MonthlySalesGoal: p.MonthlySalesGoal,
	}
	data, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal profile header: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write profile header: %w", err)
	}

	for _, e := range p.Entries() {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
