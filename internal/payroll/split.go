package payroll

import (
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

// Split 将一个班次拆分为标准、加强、主管三类工时
//
// 按优先级：
//  1. 未结束的班次（clockOut 为 nil）返回全零，进行中的时间在下班打卡前不计入
//  2. clockOut 不晚于 clockIn 的非法区间返回全零，不报错
//  3. 主管班次全部计入主管工时，不考虑时段
//  4. 其余按本地时钟与加强时段 [19:00, 04:00) 的重叠计算加强工时，剩余为标准工时
func Split(clockIn time.Time, clockOut *time.Time, isSupervisor bool) domain.TimeSplit {
	if clockOut == nil {
		return domain.TimeSplit{}
	}
	if !clockOut.After(clockIn) {
		return domain.TimeSplit{}
	}

	elapsed := clockOut.Sub(clockIn)

	if isSupervisor {
		return domain.TimeSplit{
			SupervisorHours: RoundHours(elapsed.Hours()),
		}
	}

	enhanced := enhancedDuration(ToLocal(clockIn), ToLocal(*clockOut))

	return domain.TimeSplit{
		StandardHours: RoundHours((elapsed - enhanced).Hours()),
		EnhancedHours: RoundHours(enhanced.Hours()),
	}
}

// ComputeSplit 根据班次存储的工资类型计算拆分结果
func ComputeSplit(shift *domain.Shift) domain.TimeSplit {
	return Split(shift.ClockIn, shift.ClockOut, shift.IsSupervisor())
}

// enhancedWindow 返回包含 localStart 的加强时段；若 localStart 早于 04:00，
// 则该时段是前一天 19:00 开始的那个
func enhancedWindow(localStart time.Time) (time.Time, time.Time) {
	year, month, day := localStart.Date()
	if localStart.Hour() < EnhancedEndHour {
		day--
	}

	loc := localStart.Location()
	start := time.Date(year, month, day, EnhancedStartHour, 0, 0, 0, loc)
	end := time.Date(year, month, day+1, EnhancedEndHour, 0, 0, 0, loc)
	return start, end
}

// enhancedDuration 从锚定时段开始，逐日累加 [localStart, localEnd) 与每个加强时段的重叠
func enhancedDuration(localStart, localEnd time.Time) time.Duration {
	var total time.Duration

	windowStart, windowEnd := enhancedWindow(localStart)
	for windowStart.Before(localEnd) {
		overlapStart := localStart
		if windowStart.After(overlapStart) {
			overlapStart = windowStart
		}
		overlapEnd := localEnd
		if windowEnd.Before(overlapEnd) {
			overlapEnd = windowEnd
		}

		if overlapEnd.After(overlapStart) {
			total += overlapEnd.Sub(overlapStart)
		}

		windowStart = windowStart.AddDate(0, 0, 1)
		windowEnd = windowEnd.AddDate(0, 0, 1)
	}

	return total
}
