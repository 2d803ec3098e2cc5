package leadbook

import (
	"strings"
	"testing"
)

func TestDecodeProfile(t *testing.T) {
	const stream = `{"command":"profile","brokerName":"maria","initialLeads":10,"monthlySalesGoal":20}
{"command":"entry","date":"2024-05-02","signedLeads":1}

{"command":"entry","date":"2024-05-01","newLeads":5,"repiqueLeads":2,"discardedLeads":1,"discardReason":"no budget"}
`
	p, err := DecodeProfile(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeProfile() error = %v", err)
	}
	if p.BrokerName != "maria" || p.InitialLeads != 10 {
		t.Errorf("header = (%q, %d), want (maria, 10)", p.BrokerName, p.InitialLeads)
	}
	if goal, ok := p.Goal(); !ok || goal != 20 {
		t.Errorf("Goal() = (%d, %v), want (20, true)", goal, ok)
	}
	if p.Len() != 2 {
		t.Fatalf("profile has %d entries, want 2", p.Len())
	}

	first, ok := p.Entry(MustParse("2024-05-01"))
	if !ok {
		t.Fatalf("missing entry for 2024-05-01")
	}
	if first.NewLeads != 5 || first.Repique() != 2 || first.DiscardReason != "no budget" {
		t.Errorf("2024-05-01 = %+v, want newLeads 5, repique 2, a discard reason", first)
	}

	// The record written before the repique counter existed decodes with a
	// nil pointer and reads as zero.
	second, _ := p.Entry(MustParse("2024-05-02"))
	if second.RepiqueLeads != nil || second.Repique() != 0 {
		t.Errorf("2024-05-02 repique = (%v, %d), want (nil, 0)", second.RepiqueLeads, second.Repique())
	}
}

func TestDecodeProfile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		stream string
	}{
		{"no header", `{"command":"entry","date":"2024-05-01","newLeads":1}`},
		{"unknown command", `{"command":"roster","brokerName":"maria"}`},
		{"entry without date", "{\"command\":\"profile\",\"brokerName\":\"maria\"}\n{\"command\":\"entry\",\"newLeads\":1}"},
		{"not json", `profile maria`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeProfile(strings.NewReader(tt.stream)); err == nil {
				t.Errorf("DecodeProfile() should fail on %s", tt.name)
			}
		})
	}
}

func TestEncodeProfile_CanonicalOrder(t *testing.T) {
	p := NewBrokerProfile("maria", 10)
	p.Upsert(entry("2024-05-03", 1, 0, 0))
	p.Upsert(entry("2024-05-01", 2, 0, 0))

	var sb strings.Builder
	if err := EncodeProfile(&sb, p); err != nil {
		t.Fatalf("EncodeProfile() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("EncodeProfile() wrote %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], `"command":"profile"`) {
		t.Errorf("first line = %q, want the profile header", lines[0])
	}
	if !strings.Contains(lines[1], "2024-05-01") || !strings.Contains(lines[2], "2024-05-03") {
		t.Errorf("entries are not sorted by date: %v", lines[1:])
	}
	// An untouched goal must not appear in the header.
	if strings.Contains(lines[0], "monthlySalesGoal") {
		t.Errorf("header = %q, unset goal should be omitted", lines[0])
	}

	got, err := DecodeProfile(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("DecodeProfile() of encoded output: error = %v", err)
	}
	if got.Len() != 2 || got.BrokerName != "maria" {
		t.Errorf("decoded profile = (%q, %d entries), want (maria, 2)", got.BrokerName, got.Len())
	}
}

func TestImportEntries(t *testing.T) {
	const stream = `{"date":"2024-05-01","newLeads":3,"localVisits":1}

{"date":"2024-05-02","signedLeads":2}
`
	entries, err := ImportEntries(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("ImportEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ImportEntries() returned %d entries, want 2", len(entries))
	}
	if entries[0].NewLeads != 3 || entries[0].LocalVisits != 1 {
		t.Errorf("first entry = %+v, want newLeads 3 and localVisits 1", entries[0])
	}
	if entries[1].SignedLeads != 2 || entries[1].NewLeads != 0 {
		t.Errorf("second entry = %+v, absent counters should default to zero", entries[1])
	}
}

func TestImportEntries_RejectsMissingDate(t *testing.T) {
	if _, err := ImportEntries(strings.NewReader(`{"newLeads":3}`)); err == nil {
		t.Errorf("ImportEntries() should reject a line without a date")
	}
}

func TestExportEntries_RoundTrip(t *testing.T) {
	in := []DailyEntry{
		entry("2024-05-01", 3, 1, 0),
		entry("2024-05-02", 0, 0, 2),
	}
	var sb strings.Builder
	if err := ExportEntries(&sb, in); err != nil {
		t.Fatalf("ExportEntries() error = %v", err)
	}
	out, err := ImportEntries(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("ImportEntries() of exported output: error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("round trip yielded %d entries, want %d", len(out), len(in))
	}
	for i := range in {
		if !out[i].Equal(in[i]) {
			t.Errorf("entry %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}
