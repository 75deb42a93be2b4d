package domain

import (
	"time"

	"github.com/google/uuid"
)

type PayRateCategory string

const (
	PayRateStandard   PayRateCategory = "Standard"
	PayRateEnhanced   PayRateCategory = "Enhanced"
	PayRateSupervisor PayRateCategory = "Supervisor"
)

// Shift 是系统中唯一持久化的实体，ClockOut 为 nil 表示班次尚未结束
type Shift struct {
	ID              uuid.UUID       `json:"id"`
	Employee        string          `json:"employee"`
	ClockIn         time.Time       `json:"clockIn"`
	ClockOut        *time.Time      `json:"clockOut"`
	PayRateCategory PayRateCategory `json:"payRateCategory"`
	CreatedAt       time.Time       `json:"createdAt"`
	Version         int32           `json:"-"`
}

func (s *Shift) IsOpen() bool {
	return s.ClockOut == nil
}

func (s *Shift) IsSupervisor() bool {
	return s.PayRateCategory == PayRateSupervisor
}

type RoleFilter string

const (
	RoleFilterAll         RoleFilter = "all"
	RoleFilterStaff       RoleFilter = "staff"
	RoleFilterSupervisors RoleFilter = "supervisors"
)

// ShiftFilter 描述从存储层取班次时的过滤条件，nil 字段表示不过滤
type ShiftFilter struct {
	Employee *string
	From     *time.Time
	To       *time.Time
}
