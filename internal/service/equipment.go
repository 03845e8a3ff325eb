package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/logger"
	"agroverse-backend/internal/repository"
	"agroverse-backend/internal/storage"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	files         storage.FileStore
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, files storage.FileStore) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		files:         files,
	}
}

func (s *equipmentService) Create(ctx context.Context, callerID int32, callerRole domain.Role, eq *domain.Equipment) error {
	if callerRole != domain.RoleOwner {
		return fmt.Errorf("%w: only equipment owners can create listings", ErrForbidden)
	}
	if eq.Name == "" || eq.Category == "" || eq.Location == "" {
		return ErrMissingFields
	}
	if eq.PricePerDay < 0 {
		return ErrMissingFields
	}
	if eq.Specifications == nil {
		eq.Specifications = map[string]string{}
	}

	eq.OwnerID = callerID
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) Get(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.getEquipment(ctx, id)
}

func (s *equipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *equipmentService) ListMine(ctx context.Context, ownerID int32) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListByOwner(ctx, ownerID)
}

func (s *equipmentService) Update(ctx context.Context, callerID int32, id int32, upd *EquipmentUpdate) (*domain.Equipment, error) {
	eq, err := s.getEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq.OwnerID != callerID {
		return nil, fmt.Errorf("%w to update this equipment", ErrForbidden)
	}

	if upd.Name != nil {
		eq.Name = *upd.Name
	}
	if upd.Category != nil {
		eq.Category = *upd.Category
	}
	if upd.Description != nil {
		eq.Description = *upd.Description
	}
	if upd.PricePerDay != nil {
		eq.PricePerDay = *upd.PricePerDay
	}
	if upd.Location != nil {
		eq.Location = *upd.Location
	}
	if upd.IsAvailable != nil {
		eq.IsAvailable = *upd.IsAvailable
	}
	if upd.Specifications != nil {
		eq.Specifications = upd.Specifications
	}
	if upd.Terms != nil {
		eq.Terms = *upd.Terms
	}
	if upd.Image != nil {
		if eq.Image != "" {
			if err := s.files.Remove(eq.Image); err != nil {
				logger.Warn("Failed to remove replaced equipment image", "path", eq.Image, "error", err)
			}
		}
		eq.Image = *upd.Image
	}

	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) ToggleAvailability(ctx context.Context, callerID int32, id int32, isAvailable bool) (*domain.Equipment, error) {
	eq, err := s.getEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq.OwnerID != callerID {
		return nil, fmt.Errorf("%w to update this equipment", ErrForbidden)
	}

	eq.IsAvailable = isAvailable
	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) Delete(ctx context.Context, callerID int32, id int32) error {
	eq, err := s.getEquipment(ctx, id)
	if err != nil {
		return err
	}
	if eq.OwnerID != callerID {
		return fmt.Errorf("%w to delete this equipment", ErrForbidden)
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	// Bookings referencing this equipment are left untouched.
	if eq.Image != "" {
		if err := s.files.Remove(eq.Image); err != nil {
			logger.Warn("Failed to remove deleted equipment image", "path", eq.Image, "error", err)
		}
	}
	return nil
}

func (s *equipmentService) getEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("equipment %w", ErrNotFound)
		}
		return nil, err
	}
	return eq, nil
}
