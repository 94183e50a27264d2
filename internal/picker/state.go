package picker

import (
	"time"

	"github.com/username/weekday-picker/pkg/dateutil"
)

// Phase identifies the selection lifecycle state
type Phase int

const (
	// PhaseEmpty means no start date has been chosen yet
	PhaseEmpty Phase = iota
	// PhasePartial means a start date is pending without an end date
	PhasePartial
	// PhaseComplete means both endpoints are set and start < end
	PhaseComplete
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhasePartial:
		return "partial"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Change is the notification payload emitted when a selection completes
type Change struct {
	// Range holds the start and end dates as YYYY-MM-DD strings
	Range [2]string
	// WeekendDates lists every weekend date inside the inclusive range,
	// in chronological order, as YYYY-MM-DD strings
	WeekendDates []string
}

// Selection holds the picker's selection state. The zero value is the
// empty selection. Transition methods are pure: they return the next
// state and an optional change notification instead of mutating the
// receiver, so illegal combinations (an end date without a start date)
// cannot be constructed from outside the package.
type Selection struct {
	phase        Phase
	start        time.Time
	end          time.Time
	weekendDates []string
}

// Phase returns the current lifecycle phase
func (s Selection) Phase() Phase {
	return s.phase
}

// Start returns the selected start date, if one is set
func (s Selection) Start() (time.Time, bool) {
	if s.phase == PhaseEmpty {
		return time.Time{}, false
	}
	return s.start, true
}

// End returns the selected end date, if one is set
func (s Selection) End() (time.Time, bool) {
	if s.phase != PhaseComplete {
		return time.Time{}, false
	}
	return s.end, true
}

// WeekendDates returns the weekend dates of the completed range.
// Empty unless the selection is complete.
func (s Selection) WeekendDates() []string {
	return s.weekendDates
}

// ClickDay applies a calendar-day click with date d.
//
// Weekend clicks are ignored entirely; this is what keeps manually
// selected endpoints on weekdays. A weekday click either starts a new
// selection, completes the pending one (when it falls strictly after
// the pending start), or restarts the pending one (when it falls at or
// before the pending start).
func (s Selection) ClickDay(d time.Time) (Selection, *Change) {
	day := dateutil.Normalize(d)
	if dateutil.IsWeekend(day) {
		return s, nil
	}

	if s.phase == PhasePartial {
		if day.After(s.start) {
			next := Selection{
				phase:        PhaseComplete,
				start:        s.start,
				end:          day,
				weekendDates: dateutil.WeekendDates(s.start, day),
			}
			return next, next.change()
		}
		// Clicking at or before the pending start restarts the
		// selection; no notification.
		return Selection{phase: PhasePartial, start: day}, nil
	}

	// From empty or complete: begin a fresh selection.
	return Selection{phase: PhasePartial, start: day}, nil
}

// ApplyRange overwrites both endpoints at once and completes the
// selection. This is the predefined-range path: endpoints are taken
// as-is and are not nudged off weekends.
func (s Selection) ApplyRange(start, end time.Time) (Selection, *Change) {
	a := dateutil.Normalize(start)
	b := dateutil.Normalize(end)

	next := Selection{
		phase:        PhaseComplete,
		start:        a,
		end:          b,
		weekendDates: dateutil.WeekendDates(a, b),
	}
	return next, next.change()
}

// Contains reports whether day falls within the completed range,
// endpoints included. Always false unless the selection is complete.
func (s Selection) Contains(d time.Time) bool {
	if s.phase != PhaseComplete {
		return false
	}
	day := dateutil.Normalize(d)
	return !day.Before(s.start) && !day.After(s.end)
}

// IsEndpoint reports whether day equals the selected start or end date
func (s Selection) IsEndpoint(d time.Time) bool {
	day := dateutil.Normalize(d)
	switch s.phase {
	case PhasePartial:
		return day.Equal(s.start)
	case PhaseComplete:
		return day.Equal(s.start) || day.Equal(s.end)
	default:
		return false
	}
}

func (s Selection) change() *Change {
	return &Change{
		Range:        [2]string{dateutil.FormatDate(s.start), dateutil.FormatDate(s.end)},
		WeekendDates: s.weekendDates,
	}
}
