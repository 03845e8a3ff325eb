package service_test

import (
	"context"
	"io"

	"agroverse-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if eq, ok := args.Get(0).(*domain.Equipment); ok {
		return eq, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}

func (m *MockEquipmentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]domain.Equipment); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEquipmentRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Equipment, error) {
	args := m.Called(ctx, ownerID)
	if items, ok := args.Get(0).([]domain.Equipment); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEquipmentRepo) ListIDsByOwner(ctx context.Context, ownerID int32) ([]int32, error) {
	args := m.Called(ctx, ownerID)
	if ids, ok := args.Get(0).([]int32); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEquipmentRepo) CountAvailable(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockEquipmentRepo) ListImagePaths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if paths, ok := args.Get(0).([]string); ok {
		return paths, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int32, limit int32) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, limit)
	if bookings, ok := args.Get(0).([]domain.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListByEquipmentIDs(ctx context.Context, equipmentIDs []int32, limit int32) ([]domain.Booking, error) {
	args := m.Called(ctx, equipmentIDs, limit)
	if bookings, ok := args.Get(0).([]domain.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) SaveEquipmentImage(originalFilename string, r io.Reader) (string, error) {
	args := m.Called(originalFilename, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Remove(publicPath string) error {
	args := m.Called(publicPath)
	return args.Error(0)
}
