package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/weekday-picker/pkg/dateutil"
	"go.uber.org/zap"
)

// Picker owns one widget instance's selection and view state and
// notifies the host when a selection completes. All state transitions
// run synchronously in the caller's goroutine; a Picker is not safe for
// concurrent use and is not meant to be shared.
type Picker struct {
	selection Selection
	view      View
	ranges    []PredefinedRange
	onChange  func(Change)
	now       func() time.Time
	logger    *zap.Logger
}

// New creates a picker showing the current month. onChange may be nil;
// it is invoked exactly once per completed selection with the range and
// its weekend dates. An empty ranges slice falls back to the defaults.
func New(ranges []PredefinedRange, onChange func(Change), logger *zap.Logger) *Picker {
	if len(ranges) == 0 {
		ranges = DefaultRanges()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Picker{
		ranges:   ranges,
		onChange: onChange,
		now:      time.Now,
		logger:   logger,
	}
	p.view = ViewFor(dateutil.Normalize(p.now()))

	return p
}

// UseClock overrides the picker's notion of "today", which anchors
// predefined ranges and the initial view
func (p *Picker) UseClock(now func() time.Time) {
	p.now = now
	p.view = ViewFor(dateutil.Normalize(p.now()))
}

// ClickDay processes a calendar-day click. Weekend clicks are silently
// ignored; completed selections are reported through onChange.
func (p *Picker) ClickDay(d time.Time) {
	day := dateutil.Normalize(d)
	if dateutil.IsWeekend(day) {
		p.logger.Debug("Ignoring weekend click",
			zap.String("date", dateutil.FormatDate(day)))
		return
	}

	previous := p.selection.Phase()
	next, change := p.selection.ClickDay(day)
	p.selection = next

	p.logger.Info("Day clicked",
		zap.String("date", dateutil.FormatDate(day)),
		zap.String("previous_phase", previous.String()),
		zap.String("phase", next.Phase().String()))

	if change != nil {
		p.emit(*change)
	}
}

// ClickDate parses a date string and processes it as a day click
func (p *Picker) ClickDate(dateStr string) error {
	day, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return err
	}
	p.ClickDay(day)
	return nil
}

// ActivateRange activates the named predefined range: both endpoints
// are overwritten relative to today and the change notification is
// emitted immediately. The name match is case-insensitive.
func (p *Picker) ActivateRange(name string) error {
	for _, r := range p.ranges {
		if !strings.EqualFold(r.Name, name) {
			continue
		}

		start, end := r.Resolve(p.now())
		next, change := p.selection.ApplyRange(start, end)
		p.selection = next

		p.logger.Info("Predefined range activated",
			zap.String("range", r.Name),
			zap.String("start", dateutil.FormatDate(start)),
			zap.String("end", dateutil.FormatDate(end)))

		if change != nil {
			p.emit(*change)
		}
		return nil
	}

	return fmt.Errorf("unknown predefined range: %q", name)
}

// SetMonth sets the displayed month from a selector value (0-11).
// The selection is untouched.
func (p *Picker) SetMonth(month int) error {
	if month < 0 || month > 11 {
		return fmt.Errorf("month must be between 0 and 11, got %d", month)
	}
	p.view.Month = time.Month(month + 1)
	return nil
}

// SetYear sets the displayed year. The selection is untouched.
func (p *Picker) SetYear(year int) {
	p.view.Year = year
}

// NextMonth advances the view by one month, rolling the year over
func (p *Picker) NextMonth() {
	p.shiftView(1)
}

// PrevMonth moves the view back by one month, rolling the year over
func (p *Picker) PrevMonth() {
	p.shiftView(-1)
}

func (p *Picker) shiftView(months int) {
	first := time.Date(p.view.Year, p.view.Month, 1, 0, 0, 0, 0, time.Local)
	p.view = ViewFor(first.AddDate(0, months, 0))
}

// Selection returns the current selection state
func (p *Picker) Selection() Selection {
	return p.selection
}

// View returns the current view state
func (p *Picker) View() View {
	return p.view
}

// Ranges returns the configured predefined ranges, in display order
func (p *Picker) Ranges() []PredefinedRange {
	return p.ranges
}

// Grid renders the viewed month against the current selection
func (p *Picker) Grid() []DayCell {
	return MonthGrid(p.view, p.selection)
}

func (p *Picker) emit(change Change) {
	p.logger.Info("Selection completed",
		zap.String("start", change.Range[0]),
		zap.String("end", change.Range[1]),
		zap.Strings("weekend_dates", change.WeekendDates))

	if p.onChange != nil {
		p.onChange(change)
	}
}
