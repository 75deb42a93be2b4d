package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

const shiftColumns = `id, employee, clock_in, clock_out, pay_rate_type, created_at, version`

func scanShift(row rowScanner) (*domain.Shift, error) {
	shift := &domain.Shift{}
	var clockOut sql.NullTime

	dst := []any{&shift.ID, &shift.Employee, &shift.ClockIn, &clockOut, &shift.PayRateCategory, &shift.CreatedAt, &shift.Version}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}

	shift.ClockIn = shift.ClockIn.UTC()
	shift.CreatedAt = shift.CreatedAt.UTC()
	if clockOut.Valid {
		out := clockOut.Time.UTC()
		shift.ClockOut = &out
	}

	return shift, nil
}

func (r *Repository) CreateShift(ctx context.Context, shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (employee, clock_in, clock_out, pay_rate_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	args := []any{shift.Employee, shift.ClockIn, shift.ClockOut, shift.PayRateCategory}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftByID(ctx context.Context, id uuid.UUID) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return scanShift(r.dbpool.QueryRowContext(ctx, query, id))
}

// GetOpenShift 查找员工最近一个未结束的班次，姓名不区分大小写
func (r *Repository) GetOpenShift(ctx context.Context, employee string) (*domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE lower(employee) = lower($1) AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return scanShift(r.dbpool.QueryRowContext(ctx, query, employee))
}

// CloseShift 设置下班时间，版本号不匹配时返回 sql.ErrNoRows
func (r *Repository) CloseShift(ctx context.Context, shift *domain.Shift, clockOut time.Time) error {
	query := `
		UPDATE shifts
		SET
			clock_out = $1,
			version = version + 1
		WHERE id = $2 AND version = $3 AND clock_out IS NULL
		RETURNING version
	`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, clockOut, shift.ID, shift.Version).Scan(&shift.Version); err != nil {
		return err
	}

	shift.ClockOut = &clockOut
	return nil
}

func (r *Repository) UpdateShift(ctx context.Context, shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET
			employee = $1,
			clock_in = $2,
			clock_out = $3,
			pay_rate_type = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	args := []any{shift.Employee, shift.ClockIn, shift.ClockOut, shift.PayRateCategory, shift.ID, shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.Version); err != nil {
		return err
	}

	return nil
}

// DeleteShift 删除班次，班次不存在时返回 sql.ErrNoRows
func (r *Repository) DeleteShift(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM shifts WHERE id = $1`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// listShiftsQuery 根据过滤条件拼接查询语句。员工姓名匹配不区分大小写，
// From 为闭区间，To 为开区间，均作用于上班时间。
func listShiftsQuery(filter domain.ShiftFilter) (string, []any) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE 1=1`
	args := []any{}

	if filter.Employee != nil {
		args = append(args, *filter.Employee)
		query += fmt.Sprintf(" AND lower(employee) = lower($%d)", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND clock_in >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND clock_in < $%d", len(args))
	}
	query += " ORDER BY employee, clock_in"

	return query, args
}

// ListShifts 按过滤条件获取班次，按（员工，上班时间）排序
func (r *Repository) ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	query, args := listShiftsQuery(filter)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}
