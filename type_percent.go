package leadbook

import "fmt"

// Percent is a rate expressed in percentage points (e.g. 60.0 for 60%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", p)
}
