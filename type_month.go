package leadbook

import (
	"encoding/json"
	"fmt"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read month format (allows single-digit month).

// MonthFormat is the format used to represent calendar months as strings.
const MonthFormat = "2006-01"

// Month represents a calendar month with no day component.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := NewDate(year, month, 1)
	return Month{d.Year(), d.Month()}
}

// MonthOf returns the calendar month containing the given date.
func MonthOf(d Date) Month { return NewMonth(d.Year(), d.Month()) }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// Start returns the first day of the month.
func (m Month) Start() Date { return NewDate(m.y, m.m, 1) }

// End returns the last day of the month.
func (m Month) End() Date { return NewDate(m.y, m.m+1, 0) }

// Range returns the range of days covered by the month, boundaries included.
func (m Month) Range() Range { return Range{From: m.Start(), To: m.End()} }

// Contains reports whether the date falls within the month.
func (m Month) Contains(d Date) bool { return d.Year() == m.y && d.Month() == m.m }

// Next returns the following calendar month.
func (m Month) Next() Month { return NewMonth(m.y, m.m+1) }

// String formats the month in its standard "2006-01" form.
func (m Month) String() string { return m.Start().Format(MonthFormat) }

// ParseMonth parses a Month from a string. It is lenient and accepts formats like "2025-7".
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, readMonthFormat, err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// UnmarshalJSON implements the json specific way to unmarshall a month from a json string.
func (j *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	m, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*j = m
	return nil
}

func (j Month) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
