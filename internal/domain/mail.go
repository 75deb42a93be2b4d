package domain

import "time"

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ShiftClosedMailData struct {
	Employee        string    `json:"employee"`
	ClockIn         time.Time `json:"clockIn"`
	ClockOut        time.Time `json:"clockOut"`
	StandardHours   float64   `json:"standardHours"`
	EnhancedHours   float64   `json:"enhancedHours"`
	SupervisorHours float64   `json:"supervisorHours"`
}
