package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

// ValidateNoOverlap 检查同一员工（姓名不区分大小写）的班次之间是否有时间冲突。
// 未结束的班次视为一直持续下去。
func ValidateNoOverlap(shifts []*domain.Shift) error {
	byEmployee := make(map[string][]*domain.Shift)
	for _, shift := range shifts {
		key := strings.ToLower(shift.Employee)
		byEmployee[key] = append(byEmployee[key], shift)
	}

	for _, group := range byEmployee {
		sorted := append([]*domain.Shift{}, group...) // 复制切片，避免修改调用方的顺序
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].ClockIn.Before(sorted[j].ClockIn)
		})

		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if prev.ClockOut == nil {
				return fmt.Errorf("%s 的班次在 %s 开始后尚未结束，不能再有之后的班次", prev.Employee, prev.ClockIn.Format(time.RFC3339))
			}
			if cur.ClockIn.Before(*prev.ClockOut) {
				return fmt.Errorf("%s 在 %s 和 %s 开始的班次时间冲突", cur.Employee, prev.ClockIn.Format(time.RFC3339), cur.ClockIn.Format(time.RFC3339))
			}
		}
	}

	return nil
}

// ValidateSeedShift 补充 payroll.ValidateShift 之外的存储约束：姓名长度与工资类型
func ValidateSeedShift(shift *domain.Shift) error {
	if len(shift.Employee) > 100 {
		return fmt.Errorf("员工姓名 %q 过长", shift.Employee)
	}
	switch shift.PayRateCategory {
	case domain.PayRateStandard, domain.PayRateEnhanced, domain.PayRateSupervisor:
	default:
		return fmt.Errorf("未知的工资类型 %q", shift.PayRateCategory)
	}
	return nil
}
