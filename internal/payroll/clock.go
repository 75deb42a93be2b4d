package payroll

import (
	"fmt"
	"math"
	"time"
)

const (
	// 本地时间固定为参考时区 +1 小时，不处理夏令时切换，否则历史班次的加班时段边界会变化
	LocalOffset = time.Hour

	EnhancedStartHour = 19
	EnhancedEndHour   = 4

	HoursPrecision = 2
)

var localZone = time.FixedZone("BST", int(LocalOffset/time.Second))

// LocalZone 返回用于判定工资时段的本地时区
func LocalZone() *time.Location {
	return localZone
}

// ToLocal 将存储的时刻投影到本地时钟，时刻本身不变，只改变墙上时间的表示
func ToLocal(t time.Time) time.Time {
	return t.In(localZone)
}

// ToReference 将本地时钟时间转换回参考时区（UTC）
func ToReference(t time.Time) time.Time {
	return t.UTC()
}

// IsEnhancedHour 判断某个时刻在本地时钟下是否处于 [19:00, 04:00) 的加强费率时段
func IsEnhancedHour(t time.Time) bool {
	hour := ToLocal(t).Hour()
	return hour >= EnhancedStartHour || hour < EnhancedEndHour
}

func RoundHours(hours float64) float64 {
	scale := math.Pow(10, HoursPrecision)
	return math.Round(hours*scale) / scale
}

// ElapsedHours 返回已结束班次的时长（小时，保留两位小数），未结束的班次返回 nil
func ElapsedHours(clockIn time.Time, clockOut *time.Time) *float64 {
	if clockOut == nil {
		return nil
	}
	hours := RoundHours(clockOut.Sub(clockIn).Hours())
	return &hours
}

func FormatDuration(clockIn time.Time, clockOut *time.Time) string {
	if clockOut == nil {
		return "In Progress"
	}

	totalSeconds := int64(clockOut.Sub(clockIn) / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
