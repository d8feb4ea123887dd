package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/usecase/report"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodBounds(t *testing.T) {
	now := time.Date(2026, 6, 17, 15, 30, 0, 0, time.UTC)

	type testCase struct {
		name      string
		filter    string
		value     string
		wantStart time.Time
		wantEnd   time.Time
	}

	tests := []testCase{
		{"EmptyValueIsToday", report.FilterMonth, "", date(2026, 6, 17), date(2026, 6, 18)},
		{"Day", report.FilterDay, "2026-06-01", date(2026, 6, 1), date(2026, 6, 2)},
		{"Month", report.FilterMonth, "2026-06", date(2026, 6, 1), date(2026, 7, 1)},
		{"MonthRollsYear", report.FilterMonth, "2026-12", date(2026, 12, 1), date(2027, 1, 1)},
		{"Year", report.FilterYear, "2026", date(2026, 1, 1), date(2027, 1, 1)},
		// la semana ISO 25 de 2026 corre del lunes 15 al lunes 22 de junio
		{"Week", report.FilterWeek, "2026-W25", date(2026, 6, 15), date(2026, 6, 22)},
		{"WeekOne", report.FilterWeek, "2026-W01", date(2025, 12, 29), date(2026, 1, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := report.PeriodBounds(tt.filter, tt.value, now, time.UTC)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestPeriodBounds_Invalid(t *testing.T) {
	now := time.Date(2026, 6, 17, 15, 30, 0, 0, time.UTC)

	type testCase struct {
		name   string
		filter string
		value  string
	}

	tests := []testCase{
		{"BadDay", report.FilterDay, "01/06/2026"},
		{"BadWeekFormat", report.FilterWeek, "2026-25"},
		{"WeekOutOfRange", report.FilterWeek, "2026-W54"},
		{"BadMonth", report.FilterMonth, "junio"},
		{"BadYear", report.FilterYear, "26"},
		{"UnknownFilter", "quincena", "2026-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := report.PeriodBounds(tt.filter, tt.value, now, time.UTC)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationError))
		})
	}
}

func TestWeekBounds(t *testing.T) {
	type testCase struct {
		name      string
		day       time.Time
		wantStart time.Time
	}

	tests := []testCase{
		{"Monday", date(2026, 6, 15), date(2026, 6, 15)},
		{"Wednesday", date(2026, 6, 17), date(2026, 6, 15)},
		{"Sunday", date(2026, 6, 21), date(2026, 6, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := report.WeekBounds(tt.day)

			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 7), end)
		})
	}
}
