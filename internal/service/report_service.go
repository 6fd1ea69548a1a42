package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	"github.com/trashtrack/trashtrack-api/pkg/database"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type reportRepository interface {
	List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	FindByID(ctx context.Context, id int64) (*models.Report, error)
	Create(ctx context.Context, in dto.ReportRequest) (int64, error)
	Patch(ctx context.Context, id int64, patch dto.Patch) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.ReportStats, error)
	CreatePickupRequest(ctx context.Context, req dto.PickupRequest) (int64, int64, error)
}

// ReportService handles citizen reports, pickup requests and their aggregates.
type ReportService struct {
	repo      reportRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReportService creates the service.
func NewReportService(repo reportRepository, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, validator: validate, logger: logger}
}

// List returns reports matching the filter.
func (s *ReportService) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "Failed to fetch reports")
	}
	return reports, nil
}

// Get returns one report.
func (s *ReportService) Get(ctx context.Context, id int64) (*models.Report, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Report not found")
		}
		return nil, appErrors.Internal(err, "Failed to fetch report")
	}
	return report, nil
}

// Create inserts a report as given. Missing required columns surface as a store failure.
func (s *ReportService) Create(ctx context.Context, req dto.ReportRequest) (int64, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, appErrors.Internal(err, "Failed to create report")
	}
	return id, nil
}

// Update writes exactly the columns present in body.
func (s *ReportService) Update(ctx context.Context, id int64, body []byte) error {
	patch, err := parsePatch(dto.ReportPatchSchema, body, "No fields to update")
	if err != nil {
		return err
	}
	if err := s.repo.Patch(ctx, id, patch); err != nil {
		return appErrors.Internal(err, "Failed to update report")
	}
	return nil
}

// Delete removes a report.
func (s *ReportService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err, "Failed to delete report")
	}
	return nil
}

// Stats returns the grouped report counts.
func (s *ReportService) Stats(ctx context.Context) (*models.ReportStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "Failed to fetch report statistics")
	}
	return stats, nil
}

// CreatePickupRequest files a pickup report linked to a schedule.
func (s *ReportService) CreatePickupRequest(ctx context.Context, req dto.PickupRequest) (*dto.PickupScheduled, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "reporter_user_id, schedule_id, waste_type and report_date are required")
	}

	reportID, linkID, err := s.repo.CreatePickupRequest(ctx, req)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Reporter or pickup schedule does not exist")
		}
		return nil, appErrors.Internal(err, "Failed to schedule pickup")
	}

	s.logger.Info("pickup scheduled", zap.Int64("report_id", reportID), zap.Int64("schedule_id", req.ScheduleID))
	return &dto.PickupScheduled{
		ReportID:         reportID,
		ReportScheduleID: linkID,
		Message:          "Pickup scheduled successfully",
	}, nil
}
