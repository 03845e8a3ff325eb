package domain

import "time"

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleOwner  Role = "owner"
)

type User struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"` // fixed at registration
	CreatedAt    time.Time `json:"createdAt"`
}
