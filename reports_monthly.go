package leadbook

import "github.com/shopspring/decimal"

// MonthlySummary aggregates one calendar month of a broker's ledger: the
// balance carried in from prior days, the month's per-stage totals, the
// conversion rate, and the balance after the month's activity.
type MonthlySummary struct {
	Month                Month
	InitialLeadsForMonth int
	NewLeads             int
	RepiqueLeads         int
	DiscardedLeads       int
	NegotiationLeads     int
	SignedLeads          int
	TotalLeadsIn         int
	ConversionRate       Percent
	FinalLeadsForMonth   int
}

// SummarizeMonth computes the summary of one calendar month from the ledger.
// It works for any target month regardless of whether entries exist before,
// during or after it: a month with no entries yields all-zero sums, a zero
// conversion rate, and a final balance equal to the opening one; a month with
// no prior history opens on the ledger's initial leads.
func SummarizeMonth(l *Ledger, m Month) *MonthlySummary {
	s := &MonthlySummary{
		Month:                m,
		InitialLeadsForMonth: l.BalanceBefore(m.Start()),
	}

	for _, e := range l.All() {
		if e.Date.After(m.End()) {
			// The ledger is sorted by date, so it's safe to break.
			break
		}
		if !m.Contains(e.Date) {
			continue
		}
		s.NewLeads += e.NewLeads
		s.RepiqueLeads += e.Repique()
		s.DiscardedLeads += e.DiscardedLeads
		s.NegotiationLeads += e.NegotiationLeads
		s.SignedLeads += e.SignedLeads
	}

	s.TotalLeadsIn = s.NewLeads + s.RepiqueLeads
	s.ConversionRate = ratio(s.SignedLeads, s.TotalLeadsIn)
	s.FinalLeadsForMonth = s.InitialLeadsForMonth + s.TotalLeadsIn - s.DiscardedLeads - s.SignedLeads
	return s
}

// GoalAttainment returns the share of the monthly sales goal reached by the
// month's signed leads, rounded to one decimal place. A non-positive goal
// yields zero.
func (s *MonthlySummary) GoalAttainment(goal int) Percent {
	return ratio(s.SignedLeads, goal)
}

// ratio returns part/whole expressed in percentage points rounded to one
// decimal place, or zero when the denominator is not positive.
func ratio(part, whole int) Percent {
	if whole <= 0 {
		return 0
	}
	r := decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(whole))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	return Percent(r.InexactFloat64())
}
