// Package leadbook provides the types and functions for tracking a sales
// broker's daily lead-handling activity. It is designed to be local-first and
// auditable, keeping the broker's full record in a human-readable file.
//
// The core functionalities include:
//   - Ledger Building: folding an unordered set of daily activity records
//     into a chronologically consistent sequence of running lead balances.
//   - Monthly Aggregation: computing a month's opening and closing balances,
//     per-stage totals and the conversion rate from the ledger.
//   - Edit Reconciliation: deciding, for a given date, whether an unsaved
//     draft, a committed record, or an empty default should populate the
//     editable form, and applying single-day and multi-day bulk writes
//     against the entry store and the draft cache.
//   - Data Persistence: encoding and decoding broker profiles to and from a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `lb` command-line
// tool; rendering and export concerns live outside it.
package leadbook
