package picker

import (
	"time"

	"github.com/username/weekday-picker/pkg/dateutil"
)

const (
	// DefaultYearWindow is the number of years offered by the year selector
	DefaultYearWindow = 50
	// DefaultYearOffset shifts the center of the year window relative to
	// the current year
	DefaultYearOffset = -10
)

// View controls which month's grid is rendered. It is independent of
// the selection: changing it never touches selected dates.
type View struct {
	Year  int
	Month time.Month
}

// ViewFor returns the view showing the month containing date
func ViewFor(date time.Time) View {
	return View{Year: date.Year(), Month: date.Month()}
}

// DayCell describes one rendered day of the month grid
type DayCell struct {
	Day         int
	Date        time.Time
	Weekend     bool
	Selected    bool
	Highlighted bool
}

// MonthGrid produces one cell per day of the viewed month. A cell is
// marked Weekend when it falls on Saturday or Sunday, Selected when it
// equals a selection endpoint, and Highlighted when it lies inside a
// completed range (endpoints included).
func MonthGrid(view View, sel Selection) []DayCell {
	days := dateutil.DaysInMonth(view.Year, view.Month)

	cells := make([]DayCell, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(view.Year, view.Month, day, 0, 0, 0, 0, time.Local)
		cells = append(cells, DayCell{
			Day:         day,
			Date:        date,
			Weekend:     dateutil.IsWeekend(date),
			Selected:    sel.IsEndpoint(date),
			Highlighted: sel.Contains(date),
		})
	}

	return cells
}

// MonthOptions returns the month selector values (0 = January)
func MonthOptions() []int {
	months := make([]int, 12)
	for i := range months {
		months[i] = i
	}
	return months
}

// YearOptions returns a contiguous window of years for the year
// selector, centered on now's year plus offset
func YearOptions(now time.Time, window, offset int) []int {
	if window <= 0 {
		window = DefaultYearWindow
	}
	center := now.Year() + offset

	years := make([]int, 0, window)
	for y := center - window/2; y < center+window-window/2; y++ {
		years = append(years, y)
	}
	return years
}
