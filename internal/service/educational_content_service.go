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

type educationalContentRepository interface {
	List(ctx context.Context) ([]models.EducationalContent, error)
	FindByID(ctx context.Context, id int64) (*models.EducationalContent, error)
	Create(ctx context.Context, in dto.EducationalContentRequest) (int64, error)
	Update(ctx context.Context, id int64, in dto.EducationalContentRequest) error
	Delete(ctx context.Context, id int64) error
}

// EducationalContentService manages articles.
type EducationalContentService struct {
	repo   educationalContentRepository
	logger *zap.Logger
}

// NewEducationalContentService creates the service.
func NewEducationalContentService(repo educationalContentRepository, logger *zap.Logger) *EducationalContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EducationalContentService{repo: repo, logger: logger}
}

func (s *EducationalContentService) List(ctx context.Context) ([]models.EducationalContent, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "Failed to fetch educational content")
	}
	return items, nil
}

func (s *EducationalContentService) Get(ctx context.Context, id int64) (*models.EducationalContent, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Educational content not found")
		}
		return nil, appErrors.Internal(err, "Failed to fetch educational content")
	}
	return item, nil
}

func (s *EducationalContentService) Create(ctx context.Context, req dto.EducationalContentRequest) (int64, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, appErrors.Internal(err, "Failed to create educational content")
	}
	return id, nil
}

func (s *EducationalContentService) Update(ctx context.Context, id int64, req dto.EducationalContentRequest) error {
	if err := s.repo.Update(ctx, id, req); err != nil {
		return appErrors.Internal(err, "Failed to update educational content")
	}
	return nil
}

func (s *EducationalContentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err, "Failed to delete educational content")
	}
	return nil
}
