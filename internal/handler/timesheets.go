package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
	"github.com/tythe-barn/time-tracker/backend/internal/payroll"
)

const DateLayout = "2006-01-02"

var (
	errEmployeeRequired  = errors.New("employee name is required")
	errInvalidDate       = errors.New("dates must use the YYYY-MM-DD format")
	errUnknownRoleFilter = errors.New("role must be one of all, staff or supervisors")
)

// ShiftRow 是班次在接口中的展示形式，附带本地时间、时长与工时拆分
type ShiftRow struct {
	*domain.Shift
	LocalClockIn  time.Time        `json:"localClockIn"`
	LocalClockOut *time.Time       `json:"localClockOut"`
	Duration      string           `json:"duration"`
	ElapsedHours  *float64         `json:"elapsedHours"`
	Split         domain.TimeSplit `json:"split"`
}

func newShiftRow(shift *domain.Shift) ShiftRow {
	row := ShiftRow{
		Shift:        shift,
		LocalClockIn: payroll.ToLocal(shift.ClockIn),
		Duration:     payroll.FormatDuration(shift.ClockIn, shift.ClockOut),
		ElapsedHours: payroll.ElapsedHours(shift.ClockIn, shift.ClockOut),
		Split:        payroll.ComputeSplit(shift),
	}
	if shift.ClockOut != nil {
		out := payroll.ToLocal(*shift.ClockOut)
		row.LocalClockOut = &out
	}
	return row
}

type Timesheet struct {
	Shifts  []ShiftRow             `json:"shifts"`
	Summary *domain.OverallSummary `json:"summary"`
}

// buildTimesheet 按角色过滤后生成明细行与汇总，输入顺序不影响结果
func buildTimesheet(shifts []*domain.Shift, role domain.RoleFilter) *Timesheet {
	filtered := payroll.FilterByRole(shifts, role)
	payroll.SortShifts(filtered)

	rows := make([]ShiftRow, 0, len(filtered))
	for _, shift := range filtered {
		rows = append(rows, newShiftRow(shift))
	}

	return &Timesheet{
		Shifts:  rows,
		Summary: payroll.AggregateOverall(filtered),
	}
}

type timesheetQuery struct {
	Filter domain.ShiftFilter
	Role   domain.RoleFilter
}

// parseTimesheetQuery 解析查询参数。非经理必须指定员工姓名，且只能看到该员工的班次。
// range 预设优先于 from/to，日期按本地时区解释。
func parseTimesheetQuery(q url.Values, principal *domain.Principal, now time.Time) (*timesheetQuery, error) {
	query := &timesheetQuery{
		Role: domain.RoleFilterAll,
	}

	if employee := strings.TrimSpace(q.Get("employee")); employee != "" {
		query.Filter.Employee = &employee
	} else if !principal.IsManager() {
		return nil, errEmployeeRequired
	}

	switch role := domain.RoleFilter(strings.ToLower(q.Get("role"))); role {
	case "":
	case domain.RoleFilterAll, domain.RoleFilterStaff, domain.RoleFilterSupervisors:
		query.Role = role
	default:
		return nil, errUnknownRoleFilter
	}

	var from, to *time.Time
	if preset := q.Get("range"); preset != "" {
		f, t, err := payroll.DateRange(payroll.RangePreset(strings.ToLower(preset)), now)
		if err != nil {
			return nil, err
		}
		from, to = &f, &t
	} else {
		var err error
		if from, err = parseDate(q.Get("from")); err != nil {
			return nil, err
		}
		if to, err = parseDate(q.Get("to")); err != nil {
			return nil, err
		}
	}

	if from != nil && to != nil {
		if err := payroll.ValidateDateRange(*from, *to); err != nil {
			return nil, err
		}
	}
	if from != nil {
		start, _ := payroll.DayBounds(*from, *from)
		query.Filter.From = &start
	}
	if to != nil {
		_, end := payroll.DayBounds(*to, *to)
		query.Filter.To = &end
	}

	return query, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, payroll.LocalZone())
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

func (h *Handler) GetTimesheets(w http.ResponseWriter, r *http.Request) {
	query, err := parseTimesheetQuery(r.URL.Query(), principalFromContext(r.Context()), time.Now())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	shifts, err := h.repository.ListShifts(r.Context(), query.Filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "timesheet retrieved", buildTimesheet(shifts, query.Role))
}
