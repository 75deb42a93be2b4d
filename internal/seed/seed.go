package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
	"github.com/tythe-barn/time-tracker/backend/internal/payroll"
	"github.com/tythe-barn/time-tracker/backend/internal/repository"
	"github.com/tythe-barn/time-tracker/backend/internal/utils"
)

// CSV 中的时间为本地时间，精确到分钟
const TimeLayout = "2006-01-02 15:04"

var requiredHeaders = []string{"employee", "clock_in", "clock_out"}

// ParseShiftsCSV 读取导出的班次表格。必需列为 employee、clock_in、clock_out，
// 可选列 is_supervisor 与 pay_rate_type，clock_out 为空表示班次尚未结束。
func ParseShiftsCSV(reader io.Reader) ([]*domain.Shift, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	// 读取表头
	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}
	for _, header := range requiredHeaders {
		if !slices.Contains(headers, header) {
			return nil, fmt.Errorf("没有找到 %s 列", header)
		}
	}

	shifts := make([]*domain.Shift, 0)
	for line := 2; ; line++ {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("读取第 %d 行失败: %w", line, err)
		}

		record := make(map[string]string, len(headers))
		for i, value := range row {
			record[headers[i]] = strings.TrimSpace(value)
		}

		shift, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", line, err)
		}
		shifts = append(shifts, shift)
	}

	if err := utils.ValidateNoOverlap(shifts); err != nil {
		return nil, err
	}

	return shifts, nil
}

func parseRecord(record map[string]string) (*domain.Shift, error) {
	clockIn, err := time.ParseInLocation(TimeLayout, record["clock_in"], payroll.LocalZone())
	if err != nil {
		return nil, fmt.Errorf("上班时间格式错误: %w", err)
	}

	var clockOut *time.Time
	if value := record["clock_out"]; value != "" {
		out, err := time.ParseInLocation(TimeLayout, value, payroll.LocalZone())
		if err != nil {
			return nil, fmt.Errorf("下班时间格式错误: %w", err)
		}
		clockOut = &out
	}

	isSupervisor := false
	if value := record["is_supervisor"]; value != "" {
		isSupervisor, err = strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("is_supervisor 格式错误: %w", err)
		}
	}

	var override *domain.PayRateCategory
	if value := record["pay_rate_type"]; value != "" {
		category, err := payroll.ParsePayRateCategory(value)
		if err != nil {
			return nil, err
		}
		override = &category
	}

	shift, err := payroll.ValidateShift(record["employee"], clockIn, clockOut)
	if err != nil {
		return nil, err
	}
	shift.PayRateCategory = payroll.ResolveShiftCategory(override, isSupervisor, shift.ClockIn)

	if err := utils.ValidateSeedShift(shift); err != nil {
		return nil, err
	}

	return shift, nil
}

func SeedShiftsFromCSV(r *repository.Repository, path string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("打开文件失败", "error", err)
		return
	}
	defer file.Close()

	shifts, err := ParseShiftsCSV(file)
	if err != nil {
		slog.Error("解析班次失败", "error", err)
		return
	}

	cnt := 0
	for _, shift := range shifts {
		if err := r.CreateShift(context.Background(), shift); err != nil {
			slog.Error("插入班次失败", "employee", shift.Employee, "error", err)
			continue
		}
		cnt++
	}

	slog.Info("导入班次完成", "count", cnt, "total", len(shifts))
}

// SeedRandomShifts 为 n 个随机员工在过去 days 天内生成已结束的班次，约五分之一的员工是主管
func SeedRandomShifts(r *repository.Repository, n int, days int) {
	from := time.Now().AddDate(0, 0, -days)

	cnt := 0
	for i, employee := range utils.GenerateRandomEmployees(n) {
		shifts, err := utils.GenerateRandomShifts(employee, from, days, 0.6, i%5 == 0)
		if err != nil {
			slog.Error("无法生成随机班次", "employee", employee, "error", err)
			continue
		}

		for _, shift := range shifts {
			if err := r.CreateShift(context.Background(), shift); err != nil {
				slog.Error("无法插入班次", "employee", employee, "error", err)
				continue
			}
			cnt++
		}
	}

	slog.Info("插入班次成功", "count", cnt)
}
