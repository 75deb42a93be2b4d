package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
	"github.com/tythe-barn/time-tracker/backend/internal/payroll"
)

// shiftRequest 是经理手动录入或修改班次时提交的完整班次
type shiftRequest struct {
	Employee     string     `json:"employee" validate:"required,max=100"`
	ClockIn      time.Time  `json:"clockIn" validate:"required"`
	ClockOut     *time.Time `json:"clockOut"`
	IsSupervisor bool       `json:"isSupervisor"`
	PayRateType  *string    `json:"payRateType"`
}

// toShift 校验请求并决定工资类型，显式指定的类型优先
func (req *shiftRequest) toShift() (*domain.Shift, error) {
	shift, err := payroll.ValidateShift(req.Employee, req.ClockIn, req.ClockOut)
	if err != nil {
		return nil, err
	}

	var override *domain.PayRateCategory
	if req.PayRateType != nil && *req.PayRateType != "" {
		category, err := payroll.ParsePayRateCategory(*req.PayRateType)
		if err != nil {
			return nil, err
		}
		override = &category
	}

	shift.PayRateCategory = payroll.ResolveShiftCategory(override, req.IsSupervisor, shift.ClockIn)
	return shift, nil
}

func (h *Handler) readShiftRequest(w http.ResponseWriter, r *http.Request) (*shiftRequest, bool) {
	req := &shiftRequest{}

	if err := h.readJSON(w, r, req); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}

	return req, true
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	req, ok := h.readShiftRequest(w, r)
	if !ok {
		return
	}

	shift, err := req.toShift()
	if err != nil {
		h.shiftError(w, r, err)
		return
	}

	if err := h.repository.CreateShift(r.Context(), shift); err != nil {
		h.shiftError(w, r, err)
		return
	}

	h.successResponse(w, r, fmt.Sprintf("shift added for %s (%s rate)", shift.Employee, shift.PayRateCategory), newShiftRow(shift))
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)
	h.successResponse(w, r, "shift retrieved", newShiftRow(shift))
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	req, ok := h.readShiftRequest(w, r)
	if !ok {
		return
	}

	updated, err := req.toShift()
	if err != nil {
		h.shiftError(w, r, err)
		return
	}

	shift.Employee = updated.Employee
	shift.ClockIn = updated.ClockIn
	shift.ClockOut = updated.ClockOut
	shift.PayRateCategory = updated.PayRateCategory

	if err := h.repository.UpdateShift(r.Context(), shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the shift was changed by someone else, please retry")
		default:
			h.shiftError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, fmt.Sprintf("shift updated for %s (%s rate)", shift.Employee, shift.PayRateCategory), newShiftRow(shift))
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(r.Context(), shift.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift deleted", nil)
}
