package payroll

import (
	"errors"
	"time"
)

type RangePreset string

const (
	RangeThisWeek  RangePreset = "this_week"
	RangeLastWeek  RangePreset = "last_week"
	RangeThisMonth RangePreset = "this_month"
)

var (
	ErrInvalidDateRange = errors.New("end date cannot be before start date")
	ErrUnknownRange     = errors.New("unknown date range")
)

// DateRange 根据预设返回闭区间 [from, to] 的日期（本地时区零点），周从周一开始
func DateRange(preset RangePreset, today time.Time) (time.Time, time.Time, error) {
	local := ToLocal(today)
	year, month, day := local.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, localZone)

	// Go 的 Weekday 从周日开始
	sinceMonday := (int(midnight.Weekday()) + 6) % 7

	switch preset {
	case RangeThisWeek:
		from := midnight.AddDate(0, 0, -sinceMonday)
		return from, from.AddDate(0, 0, 6), nil
	case RangeLastWeek:
		from := midnight.AddDate(0, 0, -sinceMonday-7)
		return from, from.AddDate(0, 0, 6), nil
	case RangeThisMonth:
		from := time.Date(year, month, 1, 0, 0, 0, 0, localZone)
		return from, from.AddDate(0, 1, -1), nil
	default:
		return time.Time{}, time.Time{}, ErrUnknownRange
	}
}

func ValidateDateRange(from, to time.Time) error {
	if to.Before(from) {
		return ErrInvalidDateRange
	}
	return nil
}

// DayBounds 将闭区间的日期转换为半开的时刻区间 [from 零点, to 次日零点)
func DayBounds(from, to time.Time) (time.Time, time.Time) {
	fy, fm, fd := ToLocal(from).Date()
	ty, tm, td := ToLocal(to).Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, localZone)
	end := time.Date(ty, tm, td+1, 0, 0, 0, 0, localZone)
	return ToReference(start), ToReference(end)
}
