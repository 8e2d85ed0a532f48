package core

import "time"

// WindowKind selects the scope of a time window.
type WindowKind string

const (
	Monthly WindowKind = "monthly"
	Yearly  WindowKind = "yearly"
	AllTime WindowKind = "all_time"
)

// Window is a declarative time-range selector used to filter expenses
// before aggregation: a single calendar month, a full calendar year, or
// the entire history.
type Window struct {
	Kind  WindowKind
	Year  int
	Month time.Month // meaningful only when Kind == Monthly
}

func MonthWindow(year int, month time.Month) Window {
	return Window{Kind: Monthly, Year: year, Month: month}
}

func YearWindow(year int) Window {
	return Window{Kind: Yearly, Year: year}
}

func AllTimeWindow() Window {
	return Window{Kind: AllTime}
}

// Matches reports whether the expense date falls inside the window.
func (w Window) Matches(date time.Time) bool {
	switch w.Kind {
	case Monthly:
		return date.Year() == w.Year && date.Month() == w.Month
	case Yearly:
		return date.Year() == w.Year
	default:
		return true
	}
}

// FilterByWindow returns the subset of expenses whose date satisfies the
// window, preserving input order. Pure: empty input or a window with no
// matches yields an empty result, never an error.
func FilterByWindow(expenses []Expense, w Window) []Expense {
	if w.Kind == AllTime {
		return append([]Expense(nil), expenses...)
	}
	out := make([]Expense, 0)
	for _, e := range expenses {
		if w.Matches(e.Date) {
			out = append(out, e)
		}
	}
	return out
}
