package leadbook

// Counter is a typed name for one of the pipeline stage counters of a daily
// entry. It is used to address counters generically, notably by the sparse
// overrides of a bulk edit.
type Counter string

const (
	NewLeads            Counter = "newLeads"
	DiscardedLeads      Counter = "discardedLeads"
	RepiqueLeads        Counter = "repiqueLeads"
	LocalVisits         Counter = "localVisits"
	ContactingLeads     Counter = "contactingLeads"
	InProgressLeads     Counter = "inProgressLeads"
	ScheduledLeads      Counter = "scheduledLeads"
	NegotiationLeads    Counter = "negotiationLeads"
	CreditAnalysisLeads Counter = "creditAnalysisLeads"
	ApprovedLeads       Counter = "approvedLeads"
	SignedLeads         Counter = "signedLeads"
)

// Counters lists all pipeline stage counters in their canonical order.
var Counters = []Counter{
	NewLeads,
	DiscardedLeads,
	RepiqueLeads,
	LocalVisits,
	ContactingLeads,
	InProgressLeads,
	ScheduledLeads,
	NegotiationLeads,
	CreditAnalysisLeads,
	ApprovedLeads,
	SignedLeads,
}

// DailyEntry is the record of one broker's lead activity for one calendar
// date. The date is the unique key within a broker's record set.
//
// RepiqueLeads is a pointer because older records predate the field; an
// absent value counts as zero (see [DailyEntry.Repique]).
type DailyEntry struct {
	Date                Date   `json:"date"`
	NewLeads            int    `json:"newLeads"`
	DiscardedLeads      int    `json:"discardedLeads"`
	RepiqueLeads        *int   `json:"repiqueLeads,omitempty"`
	LocalVisits         int    `json:"localVisits"`
	ContactingLeads     int    `json:"contactingLeads"`
	InProgressLeads     int    `json:"inProgressLeads"`
	ScheduledLeads      int    `json:"scheduledLeads"`
	NegotiationLeads    int    `json:"negotiationLeads"`
	CreditAnalysisLeads int    `json:"creditAnalysisLeads"`
	ApprovedLeads       int    `json:"approvedLeads"`
	SignedLeads         int    `json:"signedLeads"`
	DiscardReason       string `json:"discardReason,omitempty"`
}

// NewDailyEntry returns an all-zero entry for the given date.
func NewDailyEntry(on Date) DailyEntry { return DailyEntry{Date: on} }

// Repique returns the repique counter, defaulting to zero when the record
// predates the field.
func (e DailyEntry) Repique() int {
	if e.RepiqueLeads == nil {
		return 0
	}
	return *e.RepiqueLeads
}

// SetRepique sets the repique counter to an explicit value.
func (e *DailyEntry) SetRepique(v int) { e.RepiqueLeads = &v }

// LeadsIn returns the day's total inflow: new leads plus repiques.
func (e DailyEntry) LeadsIn() int { return e.NewLeads + e.Repique() }

// NetChange returns the day's effect on the lead balance: inflow minus
// discarded and signed leads.
func (e DailyEntry) NetChange() int { return e.LeadsIn() - e.DiscardedLeads - e.SignedLeads }

// Get returns the value of the named counter.
func (e DailyEntry) Get(c Counter) int {
	switch c {
	case NewLeads:
		return e.NewLeads
	case DiscardedLeads:
		return e.DiscardedLeads
	case RepiqueLeads:
		return e.Repique()
	case LocalVisits:
		return e.LocalVisits
	case ContactingLeads:
		return e.ContactingLeads
	case InProgressLeads:
		return e.InProgressLeads
	case ScheduledLeads:
		return e.ScheduledLeads
	case NegotiationLeads:
		return e.NegotiationLeads
	case CreditAnalysisLeads:
		return e.CreditAnalysisLeads
	case ApprovedLeads:
		return e.ApprovedLeads
	case SignedLeads:
		return e.SignedLeads
	default:
		panic("unknown counter " + string(c))
	}
}

// Set assigns the value of the named counter.
func (e *DailyEntry) Set(c Counter, v int) {
	switch c {
	case NewLeads:
		e.NewLeads = v
	case DiscardedLeads:
		e.DiscardedLeads = v
	case RepiqueLeads:
		e.SetRepique(v)
	case LocalVisits:
		e.LocalVisits = v
	case ContactingLeads:
		e.ContactingLeads = v
	case InProgressLeads:
		e.InProgressLeads = v
	case ScheduledLeads:
		e.ScheduledLeads = v
	case NegotiationLeads:
		e.NegotiationLeads = v
	case CreditAnalysisLeads:
		e.CreditAnalysisLeads = v
	case ApprovedLeads:
		e.ApprovedLeads = v
	case SignedLeads:
		e.SignedLeads = v
	default:
		panic("unknown counter " + string(c))
	}
}

// Normalize applies the discard-reason lifecycle rule: the reason is forced
// empty whenever no lead was discarded, whatever was typed in the form.
func (e *DailyEntry) Normalize() {
	if e.DiscardedLeads == 0 {
		e.DiscardReason = ""
	}
}

// Equal reports whether two entries carry the same date, counters and
// discard reason. An absent repique compares equal to an explicit zero.
func (e DailyEntry) Equal(o DailyEntry) bool {
	if e.Date != o.Date || e.DiscardReason != o.DiscardReason {
		return false
	}
	for _, c := range Counters {
		if e.Get(c) != o.Get(c) {
			return false
		}
	}
	return true
}

// Overrides is the sparse field set of a bulk edit: counters present in the
// map are forced to their value (including an explicit zero), the others are
// left untouched.
type Overrides map[Counter]int
