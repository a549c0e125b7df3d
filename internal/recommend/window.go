package recommend

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	monthFormat = "2006-01"
	dateFormat  = "2006-01-02"

	// DefaultMonthsBack is how far the fallback window reaches into the past.
	DefaultMonthsBack = 6
)

// MonthWindow is an ordered set of calendar-month identifiers (YYYY-MM).
// Ordering is chronological and matters only for display; membership tests
// ignore it.
type MonthWindow []string

// Contains reports whether the given YYYY-MM identifier is in the window.
func (w MonthWindow) Contains(month string) bool {
	for _, m := range w {
		if m == month {
			return true
		}
	}

	return false
}

// String renders the window for user-facing messages.
func (w MonthWindow) String() string {
	return strings.Join(w, ", ")
}

// PrimaryWindow returns the current and next month.
func PrimaryWindow(now time.Time) MonthWindow {
	return monthsAround(now, 0)
}

// FallbackWindow returns every month from monthsBack months ago through next
// month inclusive, in chronological order (monthsBack+2 months total).
func FallbackWindow(now time.Time, monthsBack int) MonthWindow {
	if monthsBack < 0 {
		monthsBack = 0
	}

	return monthsAround(now, monthsBack)
}

func monthsAround(now time.Time, monthsBack int) MonthWindow {
	window := make(MonthWindow, 0, monthsBack+2)
	for i := -monthsBack; i <= 1; i++ {
		window = append(window, shiftMonth(now, i).Format(monthFormat))
	}

	return window
}

// DateRange returns the first and last calendar day bounding a window, used
// only to constrain the remote discover query. The primary range spans the
// current month through the end of next month; the fallback range starts
// monthsBack months earlier.
func DateRange(now time.Time, useFallback bool, monthsBack int) (string, string) {
	startShift := 0
	if useFallback {
		if monthsBack < 0 {
			monthsBack = 0
		}

		startShift = -monthsBack
	}

	start := shiftMonth(now, startShift)
	// Last day of next month: first day of the month after next, minus one day.
	end := shiftMonth(now, 2).AddDate(0, 0, -1)

	return start.Format(dateFormat), end.Format(dateFormat)
}

// shiftMonth returns the first day of the month delta months away from now.
func shiftMonth(now time.Time, delta int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(delta), 1, 0, 0, 0, 0, now.Location())
}

// MonthOf extracts the YYYY-MM identifier from a release date string. The
// second return value is false for empty or unparsable dates, which are
// treated as matching no window.
func MonthOf(released string) (string, bool) {
	if released == "" {
		return "", false
	}

	t, err := dateparse.ParseAny(released)
	if err != nil {
		return "", false
	}

	return t.Format(monthFormat), true
}
