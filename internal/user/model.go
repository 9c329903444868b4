package user

import "time"

const (
	RoleCashier    = "cashier"
	RoleProduction = "production"
	RoleAdmin      = "admin"
)

type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
