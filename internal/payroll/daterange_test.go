package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	wednesday := utc(2025, 6, 25, 12, 0)

	from, to, err := DateRange(RangeThisWeek, wednesday)
	require.NoError(t, err)
	assert.Equal(t, local(2025, 6, 23, 0, 0), from)
	assert.Equal(t, local(2025, 6, 29, 0, 0), to)

	from, to, err = DateRange(RangeLastWeek, wednesday)
	require.NoError(t, err)
	assert.Equal(t, local(2025, 6, 16, 0, 0), from)
	assert.Equal(t, local(2025, 6, 22, 0, 0), to)

	from, to, err = DateRange(RangeThisMonth, wednesday)
	require.NoError(t, err)
	assert.Equal(t, local(2025, 6, 1, 0, 0), from)
	assert.Equal(t, local(2025, 6, 30, 0, 0), to)

	from, to, err = DateRange(RangeThisMonth, utc(2025, 12, 10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, local(2025, 12, 1, 0, 0), from)
	assert.Equal(t, local(2025, 12, 31, 0, 0), to)

	_, _, err = DateRange("next_year", wednesday)
	assert.ErrorIs(t, err, ErrUnknownRange)
}

func TestDateRangeUsesLocalDay(t *testing.T) {
	// 周日 23:30 UTC 在本地已经是周一
	from, _, err := DateRange(RangeThisWeek, utc(2025, 6, 29, 23, 30))
	require.NoError(t, err)
	assert.Equal(t, local(2025, 6, 30, 0, 0), from)

	from, _, err = DateRange(RangeThisWeek, utc(2025, 6, 29, 22, 30))
	require.NoError(t, err)
	assert.Equal(t, local(2025, 6, 23, 0, 0), from)
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange(local(2025, 6, 1, 0, 0), local(2025, 6, 1, 0, 0)))
	assert.ErrorIs(t, ValidateDateRange(local(2025, 6, 2, 0, 0), local(2025, 6, 1, 0, 0)), ErrInvalidDateRange)
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(local(2025, 6, 23, 0, 0), local(2025, 6, 29, 0, 0))
	assert.Equal(t, utc(2025, 6, 22, 23, 0), start)
	assert.Equal(t, utc(2025, 6, 29, 23, 0), end)
}
