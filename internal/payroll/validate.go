package payroll

import (
	"errors"
	"strings"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

var (
	ErrEmptyIdentity   = errors.New("employee name cannot be empty")
	ErrMissingClockIn  = errors.New("clock in time is required")
	ErrInvalidInterval = errors.New("clock out time must be after clock in time")
)

// ValidateShift 在班次进入系统之前检查其不变量，通过时返回规范化后的班次
//
// 员工姓名会被去除首尾空白，时刻统一转换为 UTC。工资类型和 ID 由调用方负责填充。
func ValidateShift(employee string, clockIn time.Time, clockOut *time.Time) (*domain.Shift, error) {
	name := strings.TrimSpace(employee)
	if name == "" {
		return nil, ErrEmptyIdentity
	}
	if clockIn.IsZero() {
		return nil, ErrMissingClockIn
	}

	shift := &domain.Shift{
		Employee: name,
		ClockIn:  ToReference(clockIn),
	}

	if clockOut != nil {
		if !clockOut.After(clockIn) {
			return nil, ErrInvalidInterval
		}
		out := ToReference(*clockOut)
		shift.ClockOut = &out
	}

	return shift, nil
}
