package domain

// TimeSplit 是单个班次按工资类型拆分后的工时，不会被持久化
type TimeSplit struct {
	StandardHours   float64 `json:"standardHours"`
	EnhancedHours   float64 `json:"enhancedHours"`
	SupervisorHours float64 `json:"supervisorHours"`
}

func (t TimeSplit) Total() float64 {
	return t.StandardHours + t.EnhancedHours + t.SupervisorHours
}

func (t TimeSplit) Add(other TimeSplit) TimeSplit {
	return TimeSplit{
		StandardHours:   t.StandardHours + other.StandardHours,
		EnhancedHours:   t.EnhancedHours + other.EnhancedHours,
		SupervisorHours: t.SupervisorHours + other.SupervisorHours,
	}
}

type StaffSummary struct {
	Employee        string  `json:"employee"`
	StandardHours   float64 `json:"standardHours"`
	EnhancedHours   float64 `json:"enhancedHours"`
	SupervisorHours float64 `json:"supervisorHours"`
	TotalShifts     int     `json:"totalShifts"`
}

func (s *StaffSummary) TotalHours() float64 {
	return s.StandardHours + s.EnhancedHours + s.SupervisorHours
}

type OverallSummary struct {
	TotalHours      float64                  `json:"totalHours"`
	TotalShifts     int                      `json:"totalShifts"`
	UniqueEmployees int                      `json:"uniqueEmployees"`
	StaffSummaries  map[string]*StaffSummary `json:"staffSummaries"`
}
