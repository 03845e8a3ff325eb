package repository

import (
	"context"

	"agroverse-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Equipment, error)
	ListIDsByOwner(ctx context.Context, ownerID int32) ([]int32, error)
	CountAvailable(ctx context.Context) (int32, error)
	ListImagePaths(ctx context.Context) ([]string, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	// ListByUser returns bookings made by a renter, newest first.
	// limit == 0 means no limit.
	ListByUser(ctx context.Context, userID int32, limit int32) ([]domain.Booking, error)
	// ListByEquipmentIDs returns bookings against any of the given
	// equipment ids, newest first. limit == 0 means no limit.
	ListByEquipmentIDs(ctx context.Context, equipmentIDs []int32, limit int32) ([]domain.Booking, error)
}
