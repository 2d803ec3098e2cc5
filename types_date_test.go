package leadbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"invalid-date", Date{}, true},
		{"2025-13-01", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_Add(t *testing.T) {
	d := NewDate(2024, time.May, 31)
	if got := d.Add(1); got != NewDate(2024, time.June, 1) {
		t.Errorf("Add(1) = %v, want 2024-06-01", got)
	}
	if got := d.Add(-31); got != NewDate(2024, time.April, 30) {
		t.Errorf("Add(-31) = %v, want 2024-04-30", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParse("2024-05-01")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-05-01"` {
		t.Errorf("Marshal() = %s, want %q", data, "2024-05-01")
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestCompare(t *testing.T) {
	a := MustParse("2024-05-01")
	b := MustParse("2024-05-02")
	if Compare(a, b) != -1 || Compare(b, a) != 1 || Compare(a, a) != 0 {
		t.Errorf("Compare ordering is inconsistent")
	}
}
