package leadbook

import (
	"iter"
	"slices"
)

// LedgerEntry is a daily entry annotated with the lead balance immediately
// before and after the day's activity. It is derived, never persisted.
type LedgerEntry struct {
	DailyEntry
	StartOfDayBalance int
	EndOfDayBalance   int
}

// Ledger is the chronologically consistent view of a broker's activity: the
// committed entries sorted ascending by date, each carrying its running
// balances. The fold starts from the profile's initial leads; balances are
// signed and may go negative, which signals over-discarding or over-selling
// relative to inflow, not an error.
//
// In a Ledger entries are always in chronological order.
type Ledger struct {
	initialLeads int
	entries      []LedgerEntry
}

// BuildLedger folds an unordered collection of daily entries into a ledger.
// Entries are sorted ascending by date; ties cannot occur since the date is
// the unique key. The fold is pure: identical inputs always yield identical
// output.
func BuildLedger(initialLeads int, entries []DailyEntry) *Ledger {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b DailyEntry) int { return Compare(a.Date, b.Date) })

	l := &Ledger{
		initialLeads: initialLeads,
		entries:      make([]LedgerEntry, 0, len(sorted)),
	}
	balance := initialLeads
	for _, e := range sorted {
		le := LedgerEntry{
			DailyEntry:        e,
			StartOfDayBalance: balance,
			EndOfDayBalance:   balance + e.NetChange(),
		}
		balance = le.EndOfDayBalance
		l.entries = append(l.entries, le)
	}
	return l
}

// InitialLeads returns the balance the fold started from.
func (l *Ledger) InitialLeads() int { return l.initialLeads }

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns the ledger entries, sorted ascending by date.
func (l *Ledger) Entries() []LedgerEntry { return slices.Clone(l.entries) }

// All returns an iterator over the ledger entries in chronological order.
func (l *Ledger) All() iter.Seq2[int, LedgerEntry] {
	return func(yield func(int, LedgerEntry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// OldestEntryDate returns the date of the earliest entry in the ledger.
// It returns the zero date if the ledger has no entries.
func (l *Ledger) OldestEntryDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[0].Date
}

// NewestEntryDate returns the date of the latest entry in the ledger.
// It returns the zero date if the ledger has no entries.
func (l *Ledger) NewestEntryDate() Date {
	if len(l.entries) == 0 {
		return Date{}
	}
	return l.entries[len(l.entries)-1].Date
}

// BalanceBefore returns the lead balance accumulated by the entries strictly
// before the given date. It equals the start-of-day balance of the first
// entry on or after that date, or the fully folded balance when no such
// entry exists.
func (l *Ledger) BalanceBefore(on Date) int {
	balance := l.initialLeads
	for _, e := range l.entries {
		if !e.Date.Before(on) {
			// The ledger is sorted by date, so it's safe to break.
			break
		}
		balance = e.EndOfDayBalance
	}
	return balance
}

// EndBalance returns the balance after the last recorded day.
func (l *Ledger) EndBalance() int {
	if len(l.entries) == 0 {
		return l.initialLeads
	}
	return l.entries[len(l.entries)-1].EndOfDayBalance
}
