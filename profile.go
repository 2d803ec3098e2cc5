package leadbook

import (
	"slices"
)

// BrokerProfile is the aggregate root for one broker: the identity, the lead
// balance preceding the first recorded day, an optional monthly sales goal,
// and the set of committed daily entries, unique by date.
type BrokerProfile struct {
	BrokerName       string
	InitialLeads     int
	MonthlySalesGoal *int

	entries map[Date]DailyEntry
}

// NewBrokerProfile creates an empty profile.
func NewBrokerProfile(name string, initialLeads int) *BrokerProfile {
	return &BrokerProfile{
		BrokerName:   name,
		InitialLeads: initialLeads,
		entries:      make(map[Date]DailyEntry),
	}
}

// Goal returns the monthly sales goal if one is set.
func (p *BrokerProfile) Goal() (int, bool) {
	if p.MonthlySalesGoal == nil {
		return 0, false
	}
	return *p.MonthlySalesGoal, true
}

// SetGoal sets the monthly sales goal. A non-positive goal clears it.
func (p *BrokerProfile) SetGoal(goal int) {
	if goal <= 0 {
		p.MonthlySalesGoal = nil
		return
	}
	p.MonthlySalesGoal = &goal
}

// Entry returns the committed entry for a date, if any.
func (p *BrokerProfile) Entry(on Date) (DailyEntry, bool) {
	e, ok := p.entries[on]
	return e, ok
}

// Entries returns the committed entries sorted ascending by date.
func (p *BrokerProfile) Entries() []DailyEntry {
	out := make([]DailyEntry, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b DailyEntry) int { return Compare(a.Date, b.Date) })
	return out
}

// Len returns the number of committed entries.
func (p *BrokerProfile) Len() int { return len(p.entries) }

// Upsert inserts the entry, replacing wholesale any committed entry for the
// same date.
func (p *BrokerProfile) Upsert(e DailyEntry) {
	if p.entries == nil {
		p.entries = make(map[Date]DailyEntry)
	}
	p.entries[e.Date] = e
}

// Delete removes the entry for a date. It reports whether an entry existed.
func (p *BrokerProfile) Delete(on Date) bool {
	_, ok := p.entries[on]
	delete(p.entries, on)
	return ok
}

// Ledger folds the profile's committed entries into a ledger of running
// balances.
func (p *BrokerProfile) Ledger() *Ledger {
	return BuildLedger(p.InitialLeads, p.Entries())
}
