package seed

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tythe-barn/time-tracker/backend/internal/domain"
	"github.com/tythe-barn/time-tracker/backend/internal/payroll"
)

func TestParseShiftsCSV(t *testing.T) {
	input := `Employee, Clock_In, Clock_Out, Is_Supervisor, Pay_Rate_Type
Alice, 2024-03-15 17:00, 2024-03-15 22:00, false,
Bob, 2024-03-15 18:00, 2024-03-16 02:00, true,
Ivy, 2024-03-15 10:00, 2024-03-15 12:00, , enhanced
Alice, 2024-03-16 20:00, , ,
`

	shifts, err := ParseShiftsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, shifts, 4)

	// 本地 17:00 即 UTC 16:00
	assert.Equal(t, "Alice", shifts[0].Employee)
	assert.Equal(t, time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC), shifts[0].ClockIn)
	assert.Equal(t, domain.PayRateStandard, shifts[0].PayRateCategory)
	assert.Equal(t, domain.TimeSplit{StandardHours: 2, EnhancedHours: 3}, payroll.ComputeSplit(shifts[0]))

	assert.Equal(t, domain.PayRateSupervisor, shifts[1].PayRateCategory)
	assert.Equal(t, domain.PayRateEnhanced, shifts[2].PayRateCategory)

	assert.True(t, shifts[3].IsOpen())
	assert.Equal(t, domain.PayRateEnhanced, shifts[3].PayRateCategory)
}

func TestParseShiftsCSVRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing column", "employee,clock_in\nAlice,2024-03-15 17:00\n"},
		{"bad clock in", "employee,clock_in,clock_out\nAlice,15/03/2024 17:00,\n"},
		{"reversed interval", "employee,clock_in,clock_out\nAlice,2024-03-15 17:00,2024-03-15 16:00\n"},
		{"blank employee", "employee,clock_in,clock_out\n ,2024-03-15 17:00,2024-03-15 18:00\n"},
		{"unknown pay rate", "employee,clock_in,clock_out,pay_rate_type\nAlice,2024-03-15 17:00,,Overtime\n"},
		{"bad supervisor flag", "employee,clock_in,clock_out,is_supervisor\nAlice,2024-03-15 17:00,,maybe\n"},
		{"overlap", "employee,clock_in,clock_out\nAlice,2024-03-15 17:00,2024-03-15 22:00\nalice,2024-03-15 21:00,2024-03-15 23:00\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShiftsCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseExampleFile(t *testing.T) {
	file, err := os.Open("data/shifts.example.csv")
	require.NoError(t, err)
	defer file.Close()

	shifts, err := ParseShiftsCSV(file)
	require.NoError(t, err)
	assert.Len(t, shifts, 4)

	summary := payroll.AggregateOverall(shifts)
	assert.Equal(t, 3, summary.UniqueEmployees)
	assert.Equal(t, 24.75, summary.TotalHours)
}
