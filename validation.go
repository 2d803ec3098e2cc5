package leadbook

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError reports a write operation rejected before any store
// mutation occurred. It is always recoverable locally.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// validateCounters rejects an entry holding any negative counter.
func validateCounters(e DailyEntry) error {
	var negative []string
	for _, c := range Counters {
		if e.Get(c) < 0 {
			negative = append(negative, string(c))
		}
	}
	if len(negative) > 0 {
		return validationErrorf("negative counter: %s", strings.Join(negative, ", "))
	}
	return nil
}

// validateOverrides rejects a bulk override set holding any negative value.
func validateOverrides(ov Overrides) error {
	var negative []string
	for c, v := range ov {
		if !counterKnown(c) {
			return validationErrorf("unknown counter %q in overrides", c)
		}
		if v < 0 {
			negative = append(negative, string(c))
		}
	}
	if len(negative) > 0 {
		slices.Sort(negative)
		return validationErrorf("negative override: %s", strings.Join(negative, ", "))
	}
	return nil
}

func counterKnown(c Counter) bool { return slices.Contains(Counters, c) }

// validateNotFuture rejects a target date later than today.
func validateNotFuture(on, today Date) error {
	if on.After(today) {
		return validationErrorf("date %s is in the future", on)
	}
	return nil
}
