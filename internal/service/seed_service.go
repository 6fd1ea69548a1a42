package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type seedRepository interface {
	Seed(ctx context.Context, data dto.SeedDataset) error
}

// SeedService resets the database to the demo dataset.
type SeedService struct {
	repo       seedRepository
	logger     *zap.Logger
	production bool
	bcryptCost int
}

// NewSeedService creates the service. Seeding is refused when production is true.
func NewSeedService(repo seedRepository, logger *zap.Logger, production bool, bcryptCost int) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{repo: repo, logger: logger, production: production, bcryptCost: bcryptCost}
}

// Seed replaces every table's contents with the demo dataset.
func (s *SeedService) Seed(ctx context.Context) error {
	if s.production {
		return appErrors.ErrSeedForbidden
	}

	data, err := s.dataset()
	if err != nil {
		return appErrors.Internal(err, "Failed to seed database")
	}

	s.logger.Info("seeding database")
	if err := s.repo.Seed(ctx, data); err != nil {
		return appErrors.Internal(err, "Failed to seed database")
	}
	s.logger.Info("database seeded",
		zap.Int("users", len(data.Users)),
		zap.Int("pickup_schedules", len(data.Schedules)),
		zap.Int("educational_content", len(data.Content)),
		zap.Int("reports", len(data.Reports)),
		zap.Int("report_schedules", len(data.Links)),
	)
	return nil
}

func (s *SeedService) dataset() (dto.SeedDataset, error) {
	data := dto.SeedDataset{
		Schedules: seedSchedules(),
		Content:   seedContent,
		Reports:   seedReports(),
		Links:     seedLinks,
	}

	// Every demo account shares one password, so a single hash serves all of them.
	hash, err := hashPassword(seedPassword, s.bcryptCost)
	if err != nil {
		return dto.SeedDataset{}, err
	}
	for _, u := range seedUsers {
		data.Users = append(data.Users, dto.UserInput{
			FirstName:    &u.firstName,
			LastName:     &u.lastName,
			Email:        &u.email,
			PasswordHash: &hash,
			Role:         &u.role,
			AddressLine1: &u.address,
			City:         &u.city,
		})
	}
	return data, nil
}
