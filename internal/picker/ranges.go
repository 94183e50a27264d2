package picker

import (
	"time"

	"github.com/username/weekday-picker/pkg/dateutil"
)

// PredefinedRange is a named shortcut producing a fixed-length window
// of Days calendar days ending today
type PredefinedRange struct {
	Name string
	Days int
}

// DefaultRanges returns the built-in shortcuts, in display order
func DefaultRanges() []PredefinedRange {
	return []PredefinedRange{
		{Name: "Last 7 Days", Days: 7},
		{Name: "Last 30 Days", Days: 30},
	}
}

// Resolve computes the shortcut's window relative to now.
// The window ends on now's calendar day and spans Days days inclusive.
func (r PredefinedRange) Resolve(now time.Time) (start, end time.Time) {
	end = dateutil.Normalize(now)
	start = end.AddDate(0, 0, -(r.Days - 1))
	return start, end
}
