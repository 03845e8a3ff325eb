package http

import (
	"context"
	"io"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, phone string, role domain.Role) (*domain.User, string, error) {
	args := m.Called(ctx, name, email, password, phone, role)
	user, _ := args.Get(0).(*domain.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.String(1), args.Error(2)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID int32, name, phone string) error {
	args := m.Called(ctx, userID, name, phone)
	return args.Error(0)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) Create(ctx context.Context, callerID int32, callerRole domain.Role, eq *domain.Equipment) error {
	args := m.Called(ctx, callerID, callerRole, eq)
	return args.Error(0)
}

func (m *MockEquipmentService) Get(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	eq, _ := args.Get(0).(*domain.Equipment)
	return eq, args.Error(1)
}

func (m *MockEquipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Equipment)
	return items, args.Error(1)
}

func (m *MockEquipmentService) ListMine(ctx context.Context, ownerID int32) ([]domain.Equipment, error) {
	args := m.Called(ctx, ownerID)
	items, _ := args.Get(0).([]domain.Equipment)
	return items, args.Error(1)
}

func (m *MockEquipmentService) Update(ctx context.Context, callerID int32, id int32, upd *service.EquipmentUpdate) (*domain.Equipment, error) {
	args := m.Called(ctx, callerID, id, upd)
	eq, _ := args.Get(0).(*domain.Equipment)
	return eq, args.Error(1)
}

func (m *MockEquipmentService) ToggleAvailability(ctx context.Context, callerID int32, id int32, isAvailable bool) (*domain.Equipment, error) {
	args := m.Called(ctx, callerID, id, isAvailable)
	eq, _ := args.Get(0).(*domain.Equipment)
	return eq, args.Error(1)
}

func (m *MockEquipmentService) Delete(ctx context.Context, callerID int32, id int32) error {
	args := m.Called(ctx, callerID, id)
	return args.Error(0)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, renterID int32, equipmentID int32, startDate, endDate string, totalPrice float64, message string) (*domain.Booking, error) {
	args := m.Called(ctx, renterID, equipmentID, startDate, endDate, totalPrice, message)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingService) Get(ctx context.Context, callerID int32, callerRole domain.Role, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, callerID, callerRole, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingService) ListMine(ctx context.Context, callerID int32, callerRole domain.Role, limit int32) ([]domain.Booking, error) {
	args := m.Called(ctx, callerID, callerRole, limit)
	bookings, _ := args.Get(0).([]domain.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, callerID int32, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, callerID, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingService) Approve(ctx context.Context, callerID int32, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, callerID, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingService) Reject(ctx context.Context, callerID int32, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, callerID, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingService) Complete(ctx context.Context, callerID int32, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, callerID, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context, callerID int32, callerRole domain.Role) (*domain.DashboardStats, error) {
	args := m.Called(ctx, callerID, callerRole)
	stats, _ := args.Get(0).(*domain.DashboardStats)
	return stats, args.Error(1)
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
