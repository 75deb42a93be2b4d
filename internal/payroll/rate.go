package payroll

import (
	"errors"
	"strings"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

var ErrUnknownPayRate = errors.New("unknown pay rate category")

// ResolvePayRateCategory 是决定班次工资类型的唯一入口：主管身份覆盖一切，
// 否则按时刻是否落在加强费率时段区分
func ResolvePayRateCategory(isSupervisor bool, t time.Time) domain.PayRateCategory {
	if isSupervisor {
		return domain.PayRateSupervisor
	}
	if IsEnhancedHour(t) {
		return domain.PayRateEnhanced
	}
	return domain.PayRateStandard
}

// ResolveShiftCategory 用于经理手动录入的班次，显式指定的工资类型优先
func ResolveShiftCategory(override *domain.PayRateCategory, isSupervisor bool, clockIn time.Time) domain.PayRateCategory {
	if override != nil {
		return *override
	}
	return ResolvePayRateCategory(isSupervisor, clockIn)
}

func ParsePayRateCategory(s string) (domain.PayRateCategory, error) {
	for _, category := range []domain.PayRateCategory{
		domain.PayRateStandard,
		domain.PayRateEnhanced,
		domain.PayRateSupervisor,
	} {
		if strings.EqualFold(strings.TrimSpace(s), string(category)) {
			return category, nil
		}
	}
	return "", ErrUnknownPayRate
}
