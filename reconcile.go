package leadbook

import (
	"encoding/json"
	"fmt"
	"log"
)

// EntryStore holds the committed daily entries for each broker. The engine
// is storage-agnostic: implementations may keep records in memory, in files
// or behind a network, and report failures as errors.
type EntryStore interface {
	// List returns all committed entries for a broker, in no particular order.
	List(broker string) ([]DailyEntry, error)
	// Upsert inserts the entry or replaces wholesale the one with the same date.
	Upsert(broker string, e DailyEntry) error
	// Delete removes the entry for a date. Deleting an absent date is not an error.
	Delete(broker string, on Date) error
}

// DraftCache holds the unsaved form state for each (broker, date), as the
// serialized flat record. The reconciler owns parsing, so a corrupt draft is
// recovered here rather than in the cache.
type DraftCache interface {
	// Get returns the raw draft for a date, and whether one exists.
	Get(broker string, on Date) ([]byte, bool, error)
	// Set overwrites the draft for a date.
	Set(broker string, on Date, data []byte) error
	// Clear removes the draft for a date. Clearing an absent draft is not an error.
	Clear(broker string, on Date) error
}

// StoreError reports a failed interaction with a collaborator store.
type StoreError struct {
	Op     string
	Broker string
	Date   Date
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Broker, e.Date, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// EditState is the reconciled form state for one (broker, date).
type EditState struct {
	Entry   DailyEntry
	IsDraft bool // true when the state comes from an unsaved draft
}

// Reconciler decides which of draft, committed or default state populates
// the editable form for a date, and applies single-day and bulk writes to
// the entry store and the draft cache.
type Reconciler struct {
	store  EntryStore
	drafts DraftCache
	today  func() Date
}

// NewReconciler creates a reconciler over the given collaborators.
func NewReconciler(store EntryStore, drafts DraftCache) *Reconciler {
	return &Reconciler{store: store, drafts: drafts, today: Today}
}

// LoadEditState returns the form state for one date, by strict precedence:
// the unsaved draft if one exists, else the committed entry, else an
// all-zero default. A draft that cannot be parsed back into an entry is
// discarded with a log line and the lookup falls through to the committed
// entry; it is never a fatal error.
func (r *Reconciler) LoadEditState(broker string, on Date) (EditState, error) {
	raw, ok, err := r.drafts.Get(broker, on)
	if err != nil {
		return EditState{}, &StoreError{Op: "draft get", Broker: broker, Date: on, Err: err}
	}
	if ok {
		var e DailyEntry
		if err := json.Unmarshal(raw, &e); err == nil {
			e.Date = on
			return EditState{Entry: e, IsDraft: true}, nil
		}
		log.Printf("discarding corrupt draft for %s on %s", broker, on)
		if err := r.drafts.Clear(broker, on); err != nil {
			log.Printf("could not clear corrupt draft for %s on %s: %v", broker, on, err)
		}
	}

	entries, err := r.store.List(broker)
	if err != nil {
		return EditState{}, &StoreError{Op: "list", Broker: broker, Date: on, Err: err}
	}
	for _, e := range entries {
		if e.Date == on {
			return EditState{Entry: e}, nil
		}
	}
	return EditState{Entry: NewDailyEntry(on)}, nil
}

// SaveDraft overwrites the draft for a date with the given form state. The
// draft is a continuous shadow of the form, so every mutation goes through
// here; last write wins.
func (r *Reconciler) SaveDraft(broker string, on Date, e DailyEntry) error {
	e.Date = on
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("could not serialize draft for %s on %s: %w", broker, on, err)
	}
	if err := r.drafts.Set(broker, on, raw); err != nil {
		return &StoreError{Op: "draft set", Broker: broker, Date: on, Err: err}
	}
	return nil
}

// CommitEntry validates the fields, writes the entry to the store (insert or
// full replace, keyed by date) and clears the draft for that date. The
// discard reason is forced empty when no lead was discarded, regardless of
// what was typed. A validation failure leaves both stores untouched.
func (r *Reconciler) CommitEntry(broker string, on Date, e DailyEntry) error {
	if err := validateNotFuture(on, r.today()); err != nil {
		return err
	}
	if err := validateCounters(e); err != nil {
		return err
	}
	e.Date = on
	e.Normalize()
	if err := r.store.Upsert(broker, e); err != nil {
		return &StoreError{Op: "upsert", Broker: broker, Date: on, Err: err}
	}
	if err := r.drafts.Clear(broker, on); err != nil {
		return &StoreError{Op: "draft clear", Broker: broker, Date: on, Err: err}
	}
	return nil
}

// DeleteEntry removes the committed entry for a date and clears any draft
// cached for it.
func (r *Reconciler) DeleteEntry(broker string, on Date) error {
	if err := r.store.Delete(broker, on); err != nil {
		return &StoreError{Op: "delete", Broker: broker, Date: on, Err: err}
	}
	if err := r.drafts.Clear(broker, on); err != nil {
		return &StoreError{Op: "draft clear", Broker: broker, Date: on, Err: err}
	}
	return nil
}

// CommitBulk applies a sparse set of counter overrides to every calendar
// date in [from, to], inclusive. For each date the committed entry, or an
// all-zero one for dates with no prior entry, has the overridden counters
// forced to their value (including an explicit zero); the discard reason is
// carried over unchanged, bulk edit never touches free text. One write is
// issued per date and no date is skipped.
//
// Writes are sequential and each date commits independently: on the first
// store failure the operation stops and returns the dates already applied,
// so the caller can retry only the remainder.
func (r *Reconciler) CommitBulk(broker string, from, to Date, ov Overrides) ([]Date, error) {
	if from.After(to) {
		return nil, validationErrorf("start date %s is after end date %s", from, to)
	}
	today := r.today()
	if err := validateNotFuture(from, today); err != nil {
		return nil, err
	}
	if err := validateNotFuture(to, today); err != nil {
		return nil, err
	}
	if err := validateOverrides(ov); err != nil {
		return nil, err
	}

	entries, err := r.store.List(broker)
	if err != nil {
		return nil, &StoreError{Op: "list", Broker: broker, Date: from, Err: err}
	}
	existing := make(map[Date]DailyEntry, len(entries))
	for _, e := range entries {
		existing[e.Date] = e
	}

	applied := make([]Date, 0)
	for on := range (Range{From: from, To: to}).Days() {
		e, ok := existing[on]
		if !ok {
			e = NewDailyEntry(on)
		}
		for c, v := range ov {
			e.Set(c, v)
		}
		if err := r.store.Upsert(broker, e); err != nil {
			return applied, &StoreError{Op: "upsert", Broker: broker, Date: on, Err: err}
		}
		// The write is committed at this point, so the date counts as
		// applied even if clearing its draft fails.
		applied = append(applied, on)
		if err := r.drafts.Clear(broker, on); err != nil {
			return applied, &StoreError{Op: "draft clear", Broker: broker, Date: on, Err: err}
		}
	}
	return applied, nil
}
