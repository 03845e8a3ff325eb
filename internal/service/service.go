package service

import (
	"context"

	"agroverse-backend/internal/domain"
)

type AuthService interface {
	// Register creates a user (role defaults to farmer) and returns the
	// user plus a signed token.
	Register(ctx context.Context, name, email, password, phone string, role domain.Role) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, phone string) error
	UpdatePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error
}

// EquipmentUpdate carries a partial update; nil fields are left unchanged.
type EquipmentUpdate struct {
	Name           *string
	Category       *string
	Description    *string
	PricePerDay    *float64
	Location       *string
	IsAvailable    *bool
	Specifications map[string]string
	Terms          *string
	Image          *string // already-stored public path of a newly uploaded image
}

type EquipmentService interface {
	Create(ctx context.Context, callerID int32, callerRole domain.Role, eq *domain.Equipment) error
	Get(ctx context.Context, id int32) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListMine(ctx context.Context, ownerID int32) ([]domain.Equipment, error)
	Update(ctx context.Context, callerID int32, id int32, upd *EquipmentUpdate) (*domain.Equipment, error)
	ToggleAvailability(ctx context.Context, callerID int32, id int32, isAvailable bool) (*domain.Equipment, error)
	Delete(ctx context.Context, callerID int32, id int32) error
}

type BookingService interface {
	Create(ctx context.Context, renterID int32, equipmentID int32, startDate, endDate string, totalPrice float64, message string) (*domain.Booking, error)
	Get(ctx context.Context, callerID int32, callerRole domain.Role, id int32) (*domain.Booking, error)
	// ListMine returns the caller's bookings: for a farmer, bookings they
	// created; for an owner, bookings against their equipment. limit == 0
	// means no limit.
	ListMine(ctx context.Context, callerID int32, callerRole domain.Role, limit int32) ([]domain.Booking, error)
	Cancel(ctx context.Context, callerID int32, id int32) (*domain.Booking, error)
	Approve(ctx context.Context, callerID int32, id int32) (*domain.Booking, error)
	Reject(ctx context.Context, callerID int32, id int32) (*domain.Booking, error)
	Complete(ctx context.Context, callerID int32, id int32) (*domain.Booking, error)
}

type DashboardService interface {
	Stats(ctx context.Context, callerID int32, callerRole domain.Role) (*domain.DashboardStats, error)
}
