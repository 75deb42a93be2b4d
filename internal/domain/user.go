package domain

import (
	"time"
)

type Role string

const (
	RoleManager Role = "manager"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

// Principal 是经过认证的调用者，由 handler 显式传给报表逻辑
type Principal struct {
	UserID int64 `json:"userId"`
	Role   Role  `json:"role"`
}

func (p *Principal) IsManager() bool {
	return p != nil && p.Role == RoleManager
}
