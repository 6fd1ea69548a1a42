package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	"github.com/trashtrack/trashtrack-api/internal/repository"
	"github.com/trashtrack/trashtrack-api/pkg/database"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type reportScheduleRepository interface {
	List(ctx context.Context) ([]models.ReportSchedule, error)
	FindByID(ctx context.Context, id int64) (*models.ReportSchedule, error)
	Create(ctx context.Context, in dto.ReportScheduleRequest) (int64, error)
	Patch(ctx context.Context, id int64, patch dto.Patch) error
	Delete(ctx context.Context, id int64) error
	SetForReport(ctx context.Context, reportID int64, scheduleID *int64) (*int64, error)
}

// ReportScheduleService manages report to schedule links.
type ReportScheduleService struct {
	repo   reportScheduleRepository
	logger *zap.Logger
}

// NewReportScheduleService creates the service.
func NewReportScheduleService(repo reportScheduleRepository, logger *zap.Logger) *ReportScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportScheduleService{repo: repo, logger: logger}
}

func (s *ReportScheduleService) List(ctx context.Context) ([]models.ReportSchedule, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "Failed to fetch report schedules")
	}
	return links, nil
}

func (s *ReportScheduleService) Get(ctx context.Context, id int64) (*models.ReportSchedule, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Report schedule not found")
		}
		return nil, appErrors.Internal(err, "Failed to fetch report schedule")
	}
	return link, nil
}

func (s *ReportScheduleService) Create(ctx context.Context, req dto.ReportScheduleRequest) (int64, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, appErrors.Internal(err, "Failed to create report schedule")
	}
	return id, nil
}

// Update writes exactly the columns present in body.
func (s *ReportScheduleService) Update(ctx context.Context, id int64, body []byte) error {
	patch, err := parsePatch(dto.ReportSchedulePatchSchema, body, "No fields provided for update")
	if err != nil {
		return err
	}
	if err := s.repo.Patch(ctx, id, patch); err != nil {
		return appErrors.Internal(err, "Failed to update report schedule")
	}
	return nil
}

func (s *ReportScheduleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err, "Failed to delete report schedule")
	}
	return nil
}

// SetForReport leaves the report linked to exactly scheduleID, or to nothing when it is nil.
func (s *ReportScheduleService) SetForReport(ctx context.Context, reportID int64, scheduleID *int64) (*dto.ReportScheduleAssigned, error) {
	linkID, err := s.repo.SetForReport(ctx, reportID, scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReportNotFound):
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Report not found")
		case database.IsForeignKeyViolation(err):
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Pickup schedule does not exist")
		default:
			return nil, appErrors.Internal(err, "Failed to update report schedule")
		}
	}

	message := "Report schedule assigned successfully"
	if scheduleID == nil {
		message = "Report schedule cleared successfully"
	}
	return &dto.ReportScheduleAssigned{Message: message, ReportScheduleID: linkID}, nil
}
