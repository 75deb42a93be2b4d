package payroll

import (
	"sort"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

// AggregateStaff 按员工姓名（区分大小写，与存储一致）汇总工时。
// 未结束的班次同样计入班次数，但工时为零。
func AggregateStaff(shifts []*domain.Shift) map[string]*domain.StaffSummary {
	summaries := make(map[string]*domain.StaffSummary)

	for _, shift := range shifts {
		split := ComputeSplit(shift)

		summary, exists := summaries[shift.Employee]
		if !exists {
			summary = &domain.StaffSummary{Employee: shift.Employee}
			summaries[shift.Employee] = summary
		}

		summary.StandardHours += split.StandardHours
		summary.EnhancedHours += split.EnhancedHours
		summary.SupervisorHours += split.SupervisorHours
		summary.TotalShifts++
	}

	// 浮点累加的结果和顺序有关，统一舍入后汇总才与输入顺序无关
	for _, summary := range summaries {
		summary.StandardHours = RoundHours(summary.StandardHours)
		summary.EnhancedHours = RoundHours(summary.EnhancedHours)
		summary.SupervisorHours = RoundHours(summary.SupervisorHours)
	}

	return summaries
}

func AggregateOverall(shifts []*domain.Shift) *domain.OverallSummary {
	summaries := AggregateStaff(shifts)

	totalHours := 0.0
	totalShifts := 0
	for _, summary := range summaries {
		totalHours += summary.TotalHours()
		totalShifts += summary.TotalShifts
	}

	return &domain.OverallSummary{
		TotalHours:      RoundHours(totalHours),
		TotalShifts:     totalShifts,
		UniqueEmployees: len(summaries),
		StaffSummaries:  summaries,
	}
}

// SortShifts 按（员工姓名，上班时间升序）排序，用于稳定的展示顺序
func SortShifts(shifts []*domain.Shift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		if shifts[i].Employee != shifts[j].Employee {
			return shifts[i].Employee < shifts[j].Employee
		}
		return shifts[i].ClockIn.Before(shifts[j].ClockIn)
	})
}

func FilterByRole(shifts []*domain.Shift, role domain.RoleFilter) []*domain.Shift {
	if role == "" || role == domain.RoleFilterAll {
		return shifts
	}

	filtered := make([]*domain.Shift, 0, len(shifts))
	for _, shift := range shifts {
		switch role {
		case domain.RoleFilterStaff:
			if !shift.IsSupervisor() {
				filtered = append(filtered, shift)
			}
		case domain.RoleFilterSupervisors:
			if shift.IsSupervisor() {
				filtered = append(filtered, shift)
			}
		}
	}
	return filtered
}
