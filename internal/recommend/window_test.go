package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryWindow(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want MonthWindow
	}{
		{
			name: "mid year",
			now:  time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC),
			want: MonthWindow{"2026-08", "2026-09"},
		},
		{
			name: "december rolls into next year",
			now:  time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC),
			want: MonthWindow{"2026-12", "2027-01"},
		},
		{
			name: "first day of month",
			now:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: MonthWindow{"2026-01", "2026-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrimaryWindow(tt.now)

			require.Len(t, got, 2)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackWindow(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	got := FallbackWindow(now, 6)

	want := MonthWindow{"2025-07", "2025-08", "2025-09", "2025-10", "2025-11", "2025-12", "2026-01", "2026-02"}
	assert.Equal(t, want, got)
}

func TestFallbackWindowLength(t *testing.T) {
	now := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)

	for _, monthsBack := range []int{0, 1, 3, 6, 12} {
		got := FallbackWindow(now, monthsBack)

		require.Len(t, got, monthsBack+2)

		// Distinct, chronologically ordered, ending at next month.
		seen := make(map[string]struct{}, len(got))
		for i, month := range got {
			if i > 0 {
				assert.Less(t, got[i-1], month)
			}

			seen[month] = struct{}{}
		}

		assert.Len(t, seen, monthsBack+2)
		assert.Equal(t, "2026-09", got[len(got)-1])
	}
}

func TestFallbackWindowNegativeMonthsBack(t *testing.T) {
	now := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)

	got := FallbackWindow(now, -3)

	assert.Equal(t, MonthWindow{"2026-08", "2026-09"}, got)
}

func TestDateRange(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		useFallback bool
		wantStart   string
		wantEnd     string
	}{
		{
			name:        "primary spans current and next month",
			useFallback: false,
			wantStart:   "2026-01-01",
			wantEnd:     "2026-02-28",
		},
		{
			name:        "fallback starts six months back",
			useFallback: true,
			wantStart:   "2025-07-01",
			wantEnd:     "2026-02-28",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := DateRange(now, tt.useFallback, 6)

			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestDateRangeLeapYear(t *testing.T) {
	now := time.Date(2028, time.January, 10, 0, 0, 0, 0, time.UTC)

	_, end := DateRange(now, false, 6)

	assert.Equal(t, "2028-02-29", end)
}

func TestMonthOf(t *testing.T) {
	tests := []struct {
		name     string
		released string
		want     string
		wantOK   bool
	}{
		{name: "well formed", released: "2026-08-14", want: "2026-08", wantOK: true},
		{name: "empty", released: "", wantOK: false},
		{name: "garbage", released: "not-a-date", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MonthOf(tt.released)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthWindowContains(t *testing.T) {
	window := MonthWindow{"2026-08", "2026-09"}

	assert.True(t, window.Contains("2026-08"))
	assert.True(t, window.Contains("2026-09"))
	assert.False(t, window.Contains("2026-07"))
	assert.False(t, window.Contains(""))
}
