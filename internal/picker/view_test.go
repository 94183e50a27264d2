package picker

import (
	"testing"
	"time"
)

func TestViewFor(t *testing.T) {
	view := ViewFor(day(2022, 12, 15))

	if view.Year != 2022 || view.Month != time.December {
		t.Errorf("ViewFor = %+v, want December 2022", view)
	}
}

func TestMonthGrid_CompleteSelection(t *testing.T) {
	var sel Selection
	sel, _ = sel.ClickDay(day(2022, 12, 1))
	sel, _ = sel.ClickDay(day(2022, 12, 15))

	cells := MonthGrid(View{Year: 2022, Month: time.December}, sel)

	if len(cells) != 31 {
		t.Fatalf("grid has %d cells, want 31", len(cells))
	}

	tests := []struct {
		name        string
		index       int
		weekend     bool
		selected    bool
		highlighted bool
	}{
		{"Dec 1 start endpoint", 0, false, true, true},
		{"Dec 3 weekend inside range", 2, true, false, true},
		{"Dec 8 interior weekday", 7, false, false, true},
		{"Dec 15 end endpoint", 14, false, true, true},
		{"Dec 16 just past range", 15, false, false, false},
		{"Dec 17 weekend outside range", 16, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := cells[tt.index]

			if cell.Day != tt.index+1 {
				t.Errorf("cell day = %d, want %d", cell.Day, tt.index+1)
			}
			if cell.Weekend != tt.weekend {
				t.Errorf("Weekend = %v, want %v", cell.Weekend, tt.weekend)
			}
			if cell.Selected != tt.selected {
				t.Errorf("Selected = %v, want %v", cell.Selected, tt.selected)
			}
			if cell.Highlighted != tt.highlighted {
				t.Errorf("Highlighted = %v, want %v", cell.Highlighted, tt.highlighted)
			}
		})
	}
}

func TestMonthGrid_PartialSelection(t *testing.T) {
	var sel Selection
	sel, _ = sel.ClickDay(day(2022, 12, 1))

	cells := MonthGrid(View{Year: 2022, Month: time.December}, sel)

	if !cells[0].Selected {
		t.Error("pending start cell not marked selected")
	}
	for _, cell := range cells {
		if cell.Highlighted {
			t.Errorf("cell %d highlighted in a partial selection", cell.Day)
		}
	}
}

func TestMonthGrid_LeapFebruary(t *testing.T) {
	cells := MonthGrid(View{Year: 2024, Month: time.February}, Selection{})

	if len(cells) != 29 {
		t.Fatalf("February 2024 grid has %d cells, want 29", len(cells))
	}
	// 2024-02-29 is a Thursday.
	last := cells[28]
	if last.Day != 29 || last.Weekend {
		t.Errorf("Feb 29 cell = %+v, want weekday", last)
	}
}

func TestMonthOptions(t *testing.T) {
	months := MonthOptions()

	if len(months) != 12 {
		t.Fatalf("MonthOptions() returned %d values, want 12", len(months))
	}
	for i, m := range months {
		if m != i {
			t.Errorf("MonthOptions()[%d] = %d, want %d", i, m, i)
		}
	}
}

func TestYearOptions(t *testing.T) {
	now := day(2023, 3, 15)

	years := YearOptions(now, DefaultYearWindow, DefaultYearOffset)

	if len(years) != 50 {
		t.Fatalf("YearOptions() returned %d values, want 50", len(years))
	}
	if years[0] != 1988 {
		t.Errorf("first year = %d, want 1988", years[0])
	}
	if years[len(years)-1] != 2037 {
		t.Errorf("last year = %d, want 2037", years[len(years)-1])
	}
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			t.Fatalf("years not contiguous at index %d: %d after %d", i, years[i], years[i-1])
		}
	}
}

func TestYearOptions_DefaultWindowForInvalidSize(t *testing.T) {
	years := YearOptions(day(2023, 3, 15), 0, 0)

	if len(years) != DefaultYearWindow {
		t.Errorf("YearOptions() with zero window returned %d values, want %d",
			len(years), DefaultYearWindow)
	}
}
