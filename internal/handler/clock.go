package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tythe-barn/time-tracker/backend/internal/domain"
	"github.com/tythe-barn/time-tracker/backend/internal/payroll"
)

func clockLockKey(employee string) string {
	return fmt.Sprintf("clock_lock_%s", strings.ToLower(employee))
}

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Employee     string `json:"employee" validate:"required,max=100"`
		IsSupervisor bool   `json:"isSupervisor"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift, err := payroll.ValidateShift(req.Employee, time.Now(), nil)
	if err != nil {
		h.shiftError(w, r, err)
		return
	}

	// 同一员工的并发打卡请求只放行一个，防止“先检查后插入”的竞争
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	lockKey := clockLockKey(shift.Employee)
	acquired, err := h.redisClient.SetNX(ctx, lockKey, shift.ClockIn.Unix(), time.Duration(h.config.Redis.ClockLockTTL)*time.Second).Result()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !acquired {
		h.errorResponse(w, r, "a clock-in for this employee is already in progress")
		return
	}
	defer func() {
		if err := h.redisClient.Del(context.Background(), lockKey).Err(); err != nil {
			slog.Error("释放打卡锁失败", "key", lockKey, "error", err)
		}
	}()

	open, err := h.repository.GetOpenShift(r.Context(), shift.Employee)
	switch {
	case err == nil:
		h.errorResponse(w, r, fmt.Sprintf("%s already has an open shift since %s", open.Employee, payroll.ToLocal(open.ClockIn).Format("2006-01-02 15:04")))
		return
	case !errors.Is(err, sql.ErrNoRows):
		h.internalServerError(w, r, err)
		return
	}

	shift.PayRateCategory = payroll.ResolvePayRateCategory(req.IsSupervisor, shift.ClockIn)

	if err := h.repository.CreateShift(r.Context(), shift); err != nil {
		h.shiftError(w, r, err)
		return
	}

	h.successResponse(w, r, fmt.Sprintf("%s clocked in (%s rate)", shift.Employee, shift.PayRateCategory), newShiftRow(shift))
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Employee string `json:"employee" validate:"required,max=100"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := strings.TrimSpace(req.Employee)
	if employee == "" {
		h.shiftError(w, r, payroll.ErrEmptyIdentity)
		return
	}

	shift, err := h.repository.GetOpenShift(r.Context(), employee)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, fmt.Sprintf("no open shift found for %s", employee))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	clockOut := time.Now().UTC()
	if _, err := payroll.ValidateShift(shift.Employee, shift.ClockIn, &clockOut); err != nil {
		h.shiftError(w, r, err)
		return
	}

	if err := h.repository.CloseShift(r.Context(), shift, clockOut); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the shift was changed by someone else, please retry")
		default:
			h.shiftError(w, r, err)
		}
		return
	}

	row := newShiftRow(shift)

	// 班次已经结束，通知发送失败只记录日志
	if err := h.publishShiftClosed(r.Context(), shift, row.Split); err != nil {
		slog.Error("发送下班通知失败", "shift", shift.ID, "error", err)
	}

	h.successResponse(w, r, fmt.Sprintf("%s clocked out after %s", shift.Employee, row.Duration), row)
}

func (h *Handler) publishShiftClosed(ctx context.Context, shift *domain.Shift, split domain.TimeSplit) error {
	if h.mailChannel == nil {
		return errors.New("mail channel is not configured")
	}

	mailMessage := domain.MailMessage{
		Type: "shift_closed",
		To:   h.config.Email.NotifyAddress,
		Data: domain.ShiftClosedMailData{
			Employee:        shift.Employee,
			ClockIn:         payroll.ToLocal(shift.ClockIn),
			ClockOut:        payroll.ToLocal(*shift.ClockOut),
			StandardHours:   split.StandardHours,
			EnhancedHours:   split.EnhancedHours,
			SupervisorHours: split.SupervisorHours,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}
