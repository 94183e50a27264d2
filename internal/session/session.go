package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/username/weekday-picker/internal/picker"
	"github.com/username/weekday-picker/pkg/dateutil"
	"go.uber.org/zap"
)

// Session drives a Picker from line commands on an input stream and
// renders the month grid after every event. It is the hosting
// collaborator of the picker core: clicks, shortcut activations and
// month/year selector changes all arrive here as text commands.
type Session struct {
	picker *picker.Picker
	in     io.Reader
	out    io.Writer
	logger *zap.Logger

	// Year selector shape; overridable from config.
	YearWindow int
	YearOffset int
}

// New creates a new interactive session
func New(p *picker.Picker, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	return &Session{
		picker:     p,
		in:         in,
		out:        out,
		logger:     logger,
		YearWindow: picker.DefaultYearWindow,
		YearOffset: picker.DefaultYearOffset,
	}
}

// Run processes commands until the input is exhausted, a quit command
// arrives, or the process is signalled. Events are handled one at a
// time; every transition completes before the next line is read.
func (s *Session) Run() error {
	s.logger.Info("Interactive session started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	s.render()
	s.printHelp()

	for {
		s.prompt()

		select {
		case sig := <-sigChan:
			s.logger.Info("Received signal, exiting",
				zap.String("signal", sig.String()))
			fmt.Fprintln(s.out)
			return nil

		case line, ok := <-lines:
			if !ok {
				s.logger.Info("Input closed, exiting")
				return nil
			}
			if !s.handle(strings.TrimSpace(line)) {
				s.logger.Info("Session ended by user")
				return nil
			}
		}
	}
}

// handle executes one command line. Returns false to end the session.
func (s *Session) handle(line string) bool {
	if line == "" {
		return true
	}

	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "click":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: click YYYY-MM-DD")
			return true
		}
		if err := s.picker.ClickDate(args[0]); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return true
		}
		s.render()

	case "range":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "usage: range NAME")
			return true
		}
		name := strings.Join(args, " ")
		if err := s.picker.ActivateRange(name); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return true
		}
		s.render()

	case "month":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: month 0-11")
			return true
		}
		month, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "error: invalid month %q\n", args[0])
			return true
		}
		if err := s.picker.SetMonth(month); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return true
		}
		s.render()

	case "year":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: year YYYY")
			return true
		}
		year, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "error: invalid year %q\n", args[0])
			return true
		}
		s.picker.SetYear(year)
		s.render()

	case "next":
		s.picker.NextMonth()
		s.render()

	case "prev":
		s.picker.PrevMonth()
		s.render()

	case "ranges":
		for _, r := range s.picker.Ranges() {
			fmt.Fprintf(s.out, "  %s (%d days)\n", r.Name, r.Days)
		}

	case "years":
		years := picker.YearOptions(time.Now(), s.YearWindow, s.YearOffset)
		fmt.Fprintf(s.out, "  %d .. %d\n", years[0], years[len(years)-1])

	case "help":
		s.printHelp()

	case "quit", "exit":
		return false

	default:
		fmt.Fprintf(s.out, "unknown command %q (try 'help')\n", cmd)
	}

	return true
}

// render draws the viewed month grid with selection markers
func (s *Session) render() {
	view := s.picker.View()
	cells := s.picker.Grid()

	fmt.Fprintf(s.out, "\n      %s %d\n", view.Month, view.Year)
	fmt.Fprintln(s.out, "  Mo   Tu   We   Th   Fr   Sa   Su")

	// Pad the first week up to the weekday of day 1 (Monday-first).
	weekday := int(cells[0].Date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	row := make([]string, 0, 7)
	for i := 1; i < weekday; i++ {
		row = append(row, "    ")
	}

	for _, cell := range cells {
		row = append(row, cellString(cell))
		if len(row) == 7 {
			fmt.Fprintln(s.out, strings.Join(row, " "))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		fmt.Fprintln(s.out, strings.Join(row, " "))
	}

	s.renderSelection()
}

func (s *Session) renderSelection() {
	sel := s.picker.Selection()
	switch sel.Phase() {
	case picker.PhasePartial:
		start, _ := sel.Start()
		fmt.Fprintf(s.out, "Pending: %s .. (click a later weekday)\n", dateutil.FormatDate(start))
	case picker.PhaseComplete:
		start, _ := sel.Start()
		end, _ := sel.End()
		fmt.Fprintf(s.out, "Selected: %s .. %s, %d weekend date(s)\n",
			dateutil.FormatDate(start), dateutil.FormatDate(end), len(sel.WeekendDates()))
	}
}

// cellString renders one grid cell: [d] selected, *d* highlighted,
// d. weekend, plain otherwise
func cellString(c picker.DayCell) string {
	switch {
	case c.Selected:
		return fmt.Sprintf("[%2d]", c.Day)
	case c.Highlighted:
		return fmt.Sprintf("*%2d*", c.Day)
	case c.Weekend:
		return fmt.Sprintf(" %2d.", c.Day)
	default:
		return fmt.Sprintf(" %2d ", c.Day)
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  click YYYY-MM-DD   select a day (weekends are ignored)
  range NAME         activate a predefined range (see 'ranges')
  month 0-11         show another month
  year YYYY          show another year
  next / prev        step the displayed month
  ranges             list predefined ranges
  years              show the year selector window
  quit               exit`)
}

func (s *Session) prompt() {
	fmt.Fprint(s.out, "> ")
}
