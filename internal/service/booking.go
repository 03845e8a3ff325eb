package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/repository"
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	equipmentRepo repository.EquipmentRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, equipmentRepo repository.EquipmentRepository) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
	}
}

func (s *bookingService) Create(ctx context.Context, renterID int32, equipmentID int32, startDate, endDate string, totalPrice float64, message string) (*domain.Booking, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("equipment %w", ErrNotFound)
		}
		return nil, err
	}
	// Availability is checked once at creation time. Nothing reserves the
	// date range: overlapping bookings against the same equipment are
	// allowed and resolved by the owner out of band.
	if !eq.IsAvailable {
		return nil, ErrEquipmentUnavailable
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", ErrMissingFields)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", ErrMissingFields)
	}

	booking := &domain.Booking{
		UserID:      renterID,
		EquipmentID: equipmentID,
		StartDate:   start,
		EndDate:     end,
		TotalPrice:  totalPrice,
		Status:      domain.BookingStatusPending,
		Message:     message,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	booking.Equipment = eq
	return booking, nil
}

func (s *bookingService) Get(ctx context.Context, callerID int32, callerRole domain.Role, id int32) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	eq, err := s.loadEquipment(ctx, booking.EquipmentID)
	if err != nil {
		return nil, err
	}

	if callerRole == domain.RoleFarmer && booking.UserID != callerID {
		return nil, fmt.Errorf("%w to view this booking", ErrForbidden)
	}
	if callerRole == domain.RoleOwner && (eq == nil || eq.OwnerID != callerID) {
		return nil, fmt.Errorf("%w to view this booking", ErrForbidden)
	}

	booking.Equipment = eq
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, callerID int32, callerRole domain.Role, limit int32) ([]domain.Booking, error) {
	var (
		bookings []domain.Booking
		err      error
	)
	if callerRole == domain.RoleOwner {
		// Resolve the owner's equipment ids first, then filter bookings
		// by membership. One extra query per request; fine at this scale.
		ids, idErr := s.equipmentRepo.ListIDsByOwner(ctx, callerID)
		if idErr != nil {
			return nil, idErr
		}
		bookings, err = s.bookingRepo.ListByEquipmentIDs(ctx, ids, limit)
	} else {
		bookings, err = s.bookingRepo.ListByUser(ctx, callerID, limit)
	}
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		eq, err := s.loadEquipment(ctx, bookings[i].EquipmentID)
		if err != nil {
			return nil, err
		}
		bookings[i].Equipment = eq
	}
	return bookings, nil
}

// Cancel moves a pending booking to cancelled. Only the renter who created
// the booking may cancel it; the equipment owner uses reject instead.
func (s *bookingService) Cancel(ctx context.Context, callerID int32, id int32) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != callerID {
		return nil, fmt.Errorf("%w to cancel this booking", ErrForbidden)
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("only pending bookings can be cancelled: %w", ErrInvalidTransition)
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Approve(ctx context.Context, callerID int32, id int32) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireEquipmentOwner(ctx, booking, callerID, "approve"); err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("only pending bookings can be approved: %w", ErrInvalidTransition)
	}

	booking.Status = domain.BookingStatusApproved
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Reject(ctx context.Context, callerID int32, id int32) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireEquipmentOwner(ctx, booking, callerID, "reject"); err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("only pending bookings can be rejected: %w", ErrInvalidTransition)
	}

	booking.Status = domain.BookingStatusRejected
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Complete(ctx context.Context, callerID int32, id int32) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireEquipmentOwner(ctx, booking, callerID, "complete"); err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusApproved {
		return nil, fmt.Errorf("only approved bookings can be marked as completed: %w", ErrInvalidTransition)
	}

	booking.Status = domain.BookingStatusCompleted
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) getBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %w", ErrNotFound)
		}
		return nil, err
	}
	return booking, nil
}

// requireEquipmentOwner authorizes owner-gated transitions by loading the
// referenced equipment and comparing its owner to the caller. Bookings do
// not carry a denormalized owner id, so this is a second lookup per write.
func (s *bookingService) requireEquipmentOwner(ctx context.Context, booking *domain.Booking, callerID int32, action string) error {
	eq, err := s.loadEquipment(ctx, booking.EquipmentID)
	if err != nil {
		return err
	}
	if eq == nil || eq.OwnerID != callerID {
		return fmt.Errorf("%w to %s this booking", ErrForbidden, action)
	}
	return nil
}

// loadEquipment fetches a booking's equipment, tolerating the referenced
// row having been deleted (deletion does not cascade to bookings).
func (s *bookingService) loadEquipment(ctx context.Context, equipmentID int32) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return eq, nil
}
