package service

import (
	"context"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/repository"
)

type dashboardService struct {
	bookingRepo   repository.BookingRepository
	equipmentRepo repository.EquipmentRepository
}

func NewDashboardService(bookingRepo repository.BookingRepository, equipmentRepo repository.EquipmentRepository) DashboardService {
	return &dashboardService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
	}
}

// Stats recomputes the dashboard aggregate from scratch on every call;
// there is no running ledger.
func (s *dashboardService) Stats(ctx context.Context, callerID int32, callerRole domain.Role) (*domain.DashboardStats, error) {
	if callerRole == domain.RoleOwner {
		return s.ownerStats(ctx, callerID)
	}
	return s.farmerStats(ctx, callerID)
}

func (s *dashboardService) farmerStats(ctx context.Context, userID int32) (*domain.DashboardStats, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	available, err := s.equipmentRepo.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalBookings:  int32(len(bookings)),
		TotalEquipment: available,
		TotalEarnings:  0, // not applicable for farmers
	}
	for _, b := range bookings {
		if b.Status == domain.BookingStatusPending {
			stats.PendingBookings++
		}
	}
	return stats, nil
}

func (s *dashboardService) ownerStats(ctx context.Context, ownerID int32) (*domain.DashboardStats, error) {
	ids, err := s.equipmentRepo.ListIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByEquipmentIDs(ctx, ids, 0)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalBookings:  int32(len(bookings)),
		TotalEquipment: int32(len(ids)),
	}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusPending:
			stats.PendingBookings++
		case domain.BookingStatusApproved, domain.BookingStatusCompleted:
			// Earnings count approved and completed bookings only.
			stats.TotalEarnings += b.TotalPrice
		}
	}
	return stats, nil
}
