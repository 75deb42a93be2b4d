package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func local(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, LocalZone())
}

func ptr(t time.Time) *time.Time {
	return &t
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name         string
		clockIn      time.Time
		clockOut     *time.Time
		isSupervisor bool
		want         domain.TimeSplit
	}{
		{
			name:     "daytime shift is all standard",
			clockIn:  utc(2025, 6, 25, 9, 0),
			clockOut: ptr(utc(2025, 6, 25, 17, 0)),
			want:     domain.TimeSplit{StandardHours: 8},
		},
		{
			name:     "evening shift is all enhanced",
			clockIn:  utc(2025, 6, 25, 20, 0),
			clockOut: ptr(utc(2025, 6, 25, 23, 0)),
			want:     domain.TimeSplit{EnhancedHours: 3},
		},
		{
			name:     "night shift is all enhanced",
			clockIn:  local(2025, 6, 26, 1, 0),
			clockOut: ptr(local(2025, 6, 26, 3, 0)),
			want:     domain.TimeSplit{EnhancedHours: 2},
		},
		{
			name:     "overnight shift ends in standard",
			clockIn:  local(2025, 6, 25, 23, 0),
			clockOut: ptr(local(2025, 6, 26, 6, 0)),
			want:     domain.TimeSplit{StandardHours: 2, EnhancedHours: 5},
		},
		{
			name:     "standard into enhanced",
			clockIn:  local(2025, 6, 25, 17, 0),
			clockOut: ptr(local(2025, 6, 25, 21, 0)),
			want:     domain.TimeSplit{StandardHours: 2, EnhancedHours: 2},
		},
		{
			name:     "early morning start anchors to previous evening window",
			clockIn:  local(2025, 6, 26, 3, 0),
			clockOut: ptr(local(2025, 6, 26, 7, 0)),
			want:     domain.TimeSplit{StandardHours: 3, EnhancedHours: 1},
		},
		{
			name:     "standard through enhanced and back to standard",
			clockIn:  local(2025, 6, 25, 18, 0),
			clockOut: ptr(local(2025, 6, 26, 6, 0)),
			want:     domain.TimeSplit{StandardHours: 3, EnhancedHours: 9},
		},
		{
			name:     "sixteen hour overnight shift",
			clockIn:  local(2025, 6, 25, 16, 0),
			clockOut: ptr(local(2025, 6, 26, 8, 0)),
			want:     domain.TimeSplit{StandardHours: 7, EnhancedHours: 9},
		},
		{
			name:     "exact window boundaries",
			clockIn:  local(2025, 6, 25, 19, 0),
			clockOut: ptr(local(2025, 6, 26, 4, 0)),
			want:     domain.TimeSplit{EnhancedHours: 9},
		},
		{
			name:     "ending exactly at 19:00 stays standard",
			clockIn:  local(2025, 6, 25, 18, 30),
			clockOut: ptr(local(2025, 6, 25, 19, 0)),
			want:     domain.TimeSplit{StandardHours: 0.5},
		},
		{
			name:     "starting exactly at 04:00 is standard",
			clockIn:  local(2025, 6, 26, 4, 0),
			clockOut: ptr(local(2025, 6, 26, 5, 0)),
			want:     domain.TimeSplit{StandardHours: 1},
		},
		{
			name:     "just before the window",
			clockIn:  local(2025, 6, 25, 18, 0),
			clockOut: ptr(local(2025, 6, 25, 18, 59)),
			want:     domain.TimeSplit{StandardHours: 0.98},
		},
		{
			name:     "just after the window opens",
			clockIn:  local(2025, 6, 25, 19, 1),
			clockOut: ptr(local(2025, 6, 25, 20, 0)),
			want:     domain.TimeSplit{EnhancedHours: 0.98},
		},
		{
			name:     "morning start running into the evening window",
			clockIn:  local(2025, 6, 26, 3, 0),
			clockOut: ptr(local(2025, 6, 26, 23, 0)),
			want:     domain.TimeSplit{StandardHours: 15, EnhancedHours: 5},
		},
		{
			name:     "shift longer than a day crosses two windows",
			clockIn:  local(2025, 6, 25, 18, 0),
			clockOut: ptr(local(2025, 6, 26, 20, 0)),
			want:     domain.TimeSplit{StandardHours: 16, EnhancedHours: 10},
		},
		{
			name:         "supervisor takes the whole shift",
			clockIn:      utc(2025, 6, 25, 9, 0),
			clockOut:     ptr(utc(2025, 6, 25, 17, 0)),
			isSupervisor: true,
			want:         domain.TimeSplit{SupervisorHours: 8},
		},
		{
			name:         "supervisor overnight ignores the window",
			clockIn:      local(2025, 6, 25, 22, 0),
			clockOut:     ptr(local(2025, 6, 26, 2, 15)),
			isSupervisor: true,
			want:         domain.TimeSplit{SupervisorHours: 4.25},
		},
		{
			name:    "open shift",
			clockIn: utc(2025, 6, 25, 9, 0),
			want:    domain.TimeSplit{},
		},
		{
			name:         "open supervisor shift",
			clockIn:      utc(2025, 6, 25, 9, 0),
			isSupervisor: true,
			want:         domain.TimeSplit{},
		},
		{
			name:     "clock out before clock in",
			clockIn:  utc(2025, 6, 25, 16, 0),
			clockOut: ptr(utc(2025, 6, 25, 8, 0)),
			want:     domain.TimeSplit{},
		},
		{
			name:     "zero length",
			clockIn:  utc(2025, 6, 25, 16, 0),
			clockOut: ptr(utc(2025, 6, 25, 16, 0)),
			want:     domain.TimeSplit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.clockIn, tt.clockOut, tt.isSupervisor)
			assert.InDelta(t, tt.want.StandardHours, got.StandardHours, 1e-9)
			assert.InDelta(t, tt.want.EnhancedHours, got.EnhancedHours, 1e-9)
			assert.InDelta(t, tt.want.SupervisorHours, got.SupervisorHours, 1e-9)
		})
	}
}

func TestSplitConservation(t *testing.T) {
	base := utc(2025, 3, 1, 0, 0)

	for start := time.Duration(0); start < 48*time.Hour; start += 15 * time.Minute {
		for length := 7 * time.Minute; length <= 30*time.Hour; length += 43 * time.Minute {
			clockIn := base.Add(start)
			clockOut := clockIn.Add(length)

			split := Split(clockIn, &clockOut, false)
			require.Zero(t, split.SupervisorHours)
			require.GreaterOrEqual(t, split.StandardHours, 0.0)
			require.GreaterOrEqual(t, split.EnhancedHours, 0.0)
			require.InDelta(t, length.Hours(), split.StandardHours+split.EnhancedHours, 0.01,
				"clockIn=%s length=%s", clockIn, length)

			supervisor := Split(clockIn, &clockOut, true)
			require.Zero(t, supervisor.StandardHours)
			require.Zero(t, supervisor.EnhancedHours)
			require.Equal(t, RoundHours(length.Hours()), supervisor.SupervisorHours)
		}
	}
}

func TestSplitEnhancedNeverExceedsHoursInWindow(t *testing.T) {
	// 任何不超过 24 小时的班次，加强工时最多为一个完整时段加上另一个时段的一部分
	base := local(2025, 1, 10, 0, 0)
	for start := time.Duration(0); start < 24*time.Hour; start += 30 * time.Minute {
		clockIn := base.Add(start)
		clockOut := clockIn.Add(24 * time.Hour)

		split := Split(clockIn, &clockOut, false)
		assert.InDelta(t, 9.0, split.EnhancedHours, 1e-9, "clockIn=%s", clockIn)
		assert.InDelta(t, 15.0, split.StandardHours, 1e-9, "clockIn=%s", clockIn)
	}
}

func TestComputeSplitUsesStoredCategory(t *testing.T) {
	shift := &domain.Shift{
		Employee:        "Alice",
		ClockIn:         local(2025, 6, 25, 20, 0),
		ClockOut:        ptr(local(2025, 6, 25, 22, 0)),
		PayRateCategory: domain.PayRateEnhanced,
	}
	assert.Equal(t, domain.TimeSplit{EnhancedHours: 2}, ComputeSplit(shift))

	shift.PayRateCategory = domain.PayRateSupervisor
	assert.Equal(t, domain.TimeSplit{SupervisorHours: 2}, ComputeSplit(shift))

	// 工资类型只区分主管与否，标准/加强始终由时段决定
	shift.PayRateCategory = domain.PayRateStandard
	assert.Equal(t, domain.TimeSplit{EnhancedHours: 2}, ComputeSplit(shift))
}

func TestEnhancedWindow(t *testing.T) {
	start, end := enhancedWindow(local(2025, 6, 26, 3, 59))
	assert.Equal(t, local(2025, 6, 25, 19, 0), start)
	assert.Equal(t, local(2025, 6, 26, 4, 0), end)

	start, end = enhancedWindow(local(2025, 6, 26, 4, 0))
	assert.Equal(t, local(2025, 6, 26, 19, 0), start)
	assert.Equal(t, local(2025, 6, 27, 4, 0), end)

	// 月初凌晨锚定到上个月最后一天
	start, _ = enhancedWindow(local(2025, 7, 1, 1, 0))
	assert.Equal(t, local(2025, 6, 30, 19, 0), start)
}
