package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type pickupScheduleRepository interface {
	List(ctx context.Context) ([]models.PickupSchedule, error)
	FindByID(ctx context.Context, id int64) (*models.PickupSchedule, error)
	Create(ctx context.Context, in dto.PickupScheduleRequest) (int64, error)
	Update(ctx context.Context, id int64, in dto.PickupScheduleRequest) error
	Delete(ctx context.Context, id int64) error
}

// PickupScheduleService manages recurring collection slots.
type PickupScheduleService struct {
	repo   pickupScheduleRepository
	logger *zap.Logger
}

// NewPickupScheduleService creates the service.
func NewPickupScheduleService(repo pickupScheduleRepository, logger *zap.Logger) *PickupScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PickupScheduleService{repo: repo, logger: logger}
}

// List returns every pickup schedule.
func (s *PickupScheduleService) List(ctx context.Context) ([]models.PickupSchedule, error) {
	schedules, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "Failed to fetch pickup schedules")
	}
	return schedules, nil
}

// Get returns one pickup schedule.
func (s *PickupScheduleService) Get(ctx context.Context, id int64) (*models.PickupSchedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Pickup schedule not found")
		}
		return nil, appErrors.Internal(err, "Failed to fetch pickup schedule")
	}
	return schedule, nil
}

// Create inserts a pickup schedule.
func (s *PickupScheduleService) Create(ctx context.Context, req dto.PickupScheduleRequest) (int64, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, appErrors.Internal(err, "Failed to create pickup schedule")
	}
	return id, nil
}

// Update overwrites the schedule's columns.
func (s *PickupScheduleService) Update(ctx context.Context, id int64, req dto.PickupScheduleRequest) error {
	if err := s.repo.Update(ctx, id, req); err != nil {
		return appErrors.Internal(err, "Failed to update pickup schedule")
	}
	return nil
}

// Delete removes a pickup schedule.
func (s *PickupScheduleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err, "Failed to delete pickup schedule")
	}
	return nil
}
