package schedule

import (
	"errors"
	"fmt"
)

// ErrEndNotAfterStart rejects zero-length and inverted ranges.
var ErrEndNotAfterStart = errors.New("interval end must be after start")

// Interval is a same-day time range in minutes from midnight, end strictly
// after start. Cross-midnight ranges are out of scope: every appointment
// starts and ends on the same calendar day.
type Interval struct {
	Start int
	End   int
}

// NewInterval parses "HH:MM" bounds and enforces positive duration.
func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if e <= s {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrEndNotAfterStart, start, end)
	}
	return Interval{Start: s, End: e}, nil
}

func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Overlaps is the booking conflict predicate: half-open on matching
// boundaries, so back-to-back appointments do not conflict. It is
// deliberately narrower than the column packer's crowds test — do not unify
// the two.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.Start >= other.Start && iv.Start < other.End {
		return true
	}
	if iv.End > other.Start && iv.End <= other.End {
		return true
	}
	return iv.Start <= other.Start && iv.End >= other.End
}

// FindConflict scans an already owner- and date-scoped list and returns the
// index of the first interval the candidate overlaps.
func FindConflict(candidate Interval, existing []Interval) (int, bool) {
	for i, ex := range existing {
		if candidate.Overlaps(ex) {
			return i, true
		}
	}
	return -1, false
}
