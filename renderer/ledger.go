package renderer

import (
	"github.com/vlemos/leadbook"
)

// LedgerRow is one line of the ledger table.
type LedgerRow struct {
	Date      string
	Start     int
	New       int
	Repique   int
	Discarded int
	Signed    int
	End       int
	Reason    string
}

// LedgerView is the data rendered by the ledger template. Rows are most
// recent first, which is a display choice of this package, not a property of
// the ledger itself.
type LedgerView struct {
	Broker       string
	InitialLeads int
	EndBalance   int
	Rows         []LedgerRow
}

// LedgerMarkdown renders the broker's running-balance table to markdown.
func LedgerMarkdown(broker string, l *leadbook.Ledger) string {
	view := LedgerView{
		Broker:       broker,
		InitialLeads: l.InitialLeads(),
		EndBalance:   l.EndBalance(),
	}
	entries := l.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		view.Rows = append(view.Rows, LedgerRow{
			Date:      e.Date.String(),
			Start:     e.StartOfDayBalance,
			New:       e.NewLeads,
			Repique:   e.Repique(),
			Discarded: e.DiscardedLeads,
			Signed:    e.SignedLeads,
			End:       e.EndOfDayBalance,
			Reason:    e.DiscardReason,
		})
	}

	partials := map[string]string{
		"ledger_title": "ledger_title.md",
	}
	return renderTemplate("ledger", "ledger.md", partials, view)
}
