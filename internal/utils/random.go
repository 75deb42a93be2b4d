package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/tythe-barn/time-tracker/backend/internal/domain"
	"github.com/tythe-barn/time-tracker/backend/internal/payroll"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Oliver", "Amelia", "George", "Isla", "Harry", "Ava", "Noah", "Mia", "Jack", "Ivy",
	"Leo", "Lily", "Arthur", "Freya", "Oscar", "Grace", "Charlie", "Ella", "Jacob", "Sophie",
}
var commonSurnames = []string{
	"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Johnson", "Davies", "Patel", "Wright",
	"Evans", "Walker", "Thomas", "Roberts", "Green", "Hall", "Wood", "Clarke", "Hughes", "Lewis",
}

func GenerateRandomName() string {
	return commonFirstNames[rand.Intn(len(commonFirstNames))] + " " + commonSurnames[rand.Intn(len(commonSurnames))]
}

// GenerateRandomEmployees 生成 n 个互不相同的员工姓名，n 不能超过姓名组合总数
func GenerateRandomEmployees(n int) []string {
	if limit := len(commonFirstNames) * len(commonSurnames); n > limit {
		n = limit
	}

	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := GenerateRandomName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

var digits = "0123456789"

func GenerateUsernameFromName(fullName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	username := ""

	for i, part := range parts {
		if i == 0 {
			username += part
		} else {
			username += part[:1]
		}
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomManager(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomName()
	username := GenerateUsernameFromName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         domain.RoleManager,
	}

	return user, nil
}

// 酒吧常见的开班时间（本地时间），晚班会跨过午夜
var shiftStartHours = []int{10, 12, 16, 17, 18, 19, 20, 22}

// GenerateRandomShift 在给定日期（本地时区）生成一个已结束的班次，时长 2 到 10 小时
func GenerateRandomShift(employee string, day time.Time, isSupervisor bool) (*domain.Shift, error) {
	year, month, date := payroll.ToLocal(day).Date()
	clockIn := time.Date(year, month, date, shiftStartHours[rand.Intn(len(shiftStartHours))], rand.Intn(4)*15, 0, 0, payroll.LocalZone())
	clockOut := clockIn.Add(time.Duration(rand.Intn(33)+8) * 15 * time.Minute)

	shift, err := payroll.ValidateShift(employee, clockIn, &clockOut)
	if err != nil {
		return nil, err
	}
	shift.PayRateCategory = payroll.ResolvePayRateCategory(isSupervisor, shift.ClockIn)

	return shift, nil
}

// GenerateRandomShifts 为员工在 [from, from+days) 的每一天以给定概率生成班次，同一员工的班次互不重叠
func GenerateRandomShifts(employee string, from time.Time, days int, probability float64, isSupervisor bool) ([]*domain.Shift, error) {
	shifts := make([]*domain.Shift, 0, days)

	for i := 0; i < days; i++ {
		if rand.Float64() >= probability {
			continue
		}

		shift, err := GenerateRandomShift(employee, from.AddDate(0, 0, i), isSupervisor)
		if err != nil {
			return nil, err
		}

		// 跨过午夜的晚班可能和第二天的班次重叠，重叠时丢弃当天的班次
		if err := ValidateNoOverlap(append(shifts, shift)); err != nil {
			continue
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}
