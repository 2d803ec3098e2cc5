package renderer

import (
	"strings"
	"testing"

	"github.com/vlemos/leadbook"
)

func day(date string, newLeads, discarded, signed int) leadbook.DailyEntry {
	e := leadbook.NewDailyEntry(leadbook.MustParse(date))
	e.NewLeads = newLeads
	e.DiscardedLeads = discarded
	e.SignedLeads = signed
	return e
}

func TestLedgerMarkdown(t *testing.T) {
	l := leadbook.BuildLedger(10, []leadbook.DailyEntry{
		day("2024-05-01", 5, 1, 2),
		day("2024-05-02", 0, 0, 1),
	})

	got := LedgerMarkdown("maria", l)

	if !strings.Contains(got, "# Lead Ledger: maria") {
		t.Errorf("missing title in:\n%s", got)
	}
	// Most recent day first.
	first := strings.Index(got, "2024-05-02")
	second := strings.Index(got, "2024-05-01")
	if first < 0 || second < 0 || first > second {
		t.Errorf("rows are not most recent first in:\n%s", got)
	}
	if !strings.Contains(got, "| 2024-05-01 | 10 | 5 | 0 | 1 | 2 | 12 |") {
		t.Errorf("missing balance row in:\n%s", got)
	}
	if !strings.Contains(got, "Current balance: **11** leads (started from 10).") {
		t.Errorf("missing closing line in:\n%s", got)
	}
}

func TestLedgerMarkdown_Empty(t *testing.T) {
	got := LedgerMarkdown("maria", leadbook.BuildLedger(7, nil))
	if !strings.Contains(got, "Current balance: **7** leads") {
		t.Errorf("empty ledger should still show the balance, got:\n%s", got)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	s := &leadbook.MonthlySummary{
		Month:                leadbook.MustParseMonth("2024-05"),
		InitialLeadsForMonth: 10,
		NewLeads:             5,
		TotalLeadsIn:         5,
		DiscardedLeads:       1,
		SignedLeads:          3,
		ConversionRate:       60.0,
		FinalLeadsForMonth:   11,
	}

	got := MonthlyMarkdown("maria", s, nil)
	if !strings.Contains(got, "# Monthly Report: maria (2024-05)") {
		t.Errorf("missing title in:\n%s", got)
	}
	if !strings.Contains(got, "| Conversion rate | 60.0% |") {
		t.Errorf("missing conversion rate in:\n%s", got)
	}
	if strings.Contains(got, "Sales goal") {
		t.Errorf("goal section rendered without a goal:\n%s", got)
	}

	goal := 20
	got = MonthlyMarkdown("maria", s, &goal)
	if !strings.Contains(got, "Sales goal: 3 of 20 signed (**15.0%**).") {
		t.Errorf("missing goal section in:\n%s", got)
	}
}
