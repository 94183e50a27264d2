package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/username/weekday-picker/internal/picker"
	"go.uber.org/zap"
)

func runScript(t *testing.T, p *picker.Picker, script string) string {
	t.Helper()

	logger, _ := zap.NewDevelopment()
	var out bytes.Buffer

	sess := New(p, strings.NewReader(script), &out, logger)
	if err := sess.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	return out.String()
}

func TestSession_CompleteSelection(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	fired := 0
	p := picker.New(nil, func(picker.Change) { fired++ }, logger)

	out := runScript(t, p, "click 2022-12-01\nclick 2022-12-15\nquit\n")

	if fired != 1 {
		t.Errorf("onChange fired %d times, want 1", fired)
	}
	if !strings.Contains(out, "Selected: 2022-12-01 .. 2022-12-15, 4 weekend date(s)") {
		t.Errorf("output missing selection summary:\n%s", out)
	}
}

func TestSession_WeekendClickIsNoop(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	p := picker.New(nil, nil, logger)

	out := runScript(t, p, "click 2022-12-03\nquit\n")

	if strings.Contains(out, "Pending") {
		t.Errorf("weekend click produced a pending selection:\n%s", out)
	}
	if p.Selection().Phase() != picker.PhaseEmpty {
		t.Errorf("phase = %v, want empty", p.Selection().Phase())
	}
}

func TestSession_PredefinedRangeCommand(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	p := picker.New(nil, nil, logger)
	p.UseClock(func() time.Time {
		return time.Date(2023, 3, 15, 12, 0, 0, 0, time.Local)
	})

	out := runScript(t, p, "range Last 7 Days\nquit\n")

	if !strings.Contains(out, "Selected: 2023-03-09 .. 2023-03-15, 2 weekend date(s)") {
		t.Errorf("output missing shortcut selection summary:\n%s", out)
	}
}

func TestSession_MonthAndYearCommands(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	p := picker.New(nil, nil, logger)

	out := runScript(t, p, "month 0\nyear 2030\nquit\n")

	if !strings.Contains(out, "January 2030") {
		t.Errorf("output missing January 2030 header:\n%s", out)
	}
	if p.Selection().Phase() != picker.PhaseEmpty {
		t.Errorf("selector command changed selection phase to %v", p.Selection().Phase())
	}
}

func TestSession_InvalidInput(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	p := picker.New(nil, nil, logger)

	out := runScript(t, p, "click someday\nmonth 12\nbogus\nquit\n")

	if !strings.Contains(out, "unsupported date format") {
		t.Errorf("output missing parse error:\n%s", out)
	}
	if !strings.Contains(out, "month must be between 0 and 11") {
		t.Errorf("output missing month range error:\n%s", out)
	}
	if !strings.Contains(out, "unknown command") {
		t.Errorf("output missing unknown-command notice:\n%s", out)
	}
}

func TestSession_EndsOnClosedInput(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	p := picker.New(nil, nil, logger)

	// No quit command; the session must end when input runs out.
	out := runScript(t, p, "click 2022-12-01\n")

	if !strings.Contains(out, "Pending: 2022-12-01") {
		t.Errorf("output missing pending summary:\n%s", out)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell picker.DayCell
		want string
	}{
		{"selected", picker.DayCell{Day: 1, Selected: true, Highlighted: true}, "[ 1]"},
		{"highlighted", picker.DayCell{Day: 8, Highlighted: true}, "* 8*"},
		{"weekend", picker.DayCell{Day: 17, Weekend: true}, " 17."},
		{"plain", picker.DayCell{Day: 20}, " 20 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellString(tt.cell); got != tt.want {
				t.Errorf("cellString() = %q, want %q", got, tt.want)
			}
		})
	}
}
