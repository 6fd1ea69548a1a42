package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	"github.com/trashtrack/trashtrack-api/pkg/database"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, in dto.UserInput) (int64, error)
	Update(ctx context.Context, id int64, in dto.UserInput) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles user management workflows.
type UserService struct {
	repo       userRepository
	logger     *zap.Logger
	bcryptCost int
}

// NewUserService creates a new user service.
func NewUserService(repo userRepository, logger *zap.Logger, bcryptCost int) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, logger: logger, bcryptCost: bcryptCost}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "Failed to fetch users")
	}
	return users, nil
}

// Get returns a user by identifier.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "User not found")
		}
		return nil, appErrors.Internal(err, "Failed to fetch user")
	}
	return user, nil
}

// Create hashes the supplied credential and inserts the user.
func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (int64, error) {
	in, err := s.toInput(req, false)
	if err != nil {
		return 0, appErrors.Internal(err, "Failed to create user")
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, appErrors.ErrDuplicateEmail
		}
		return 0, appErrors.Internal(err, "Failed to create user")
	}
	s.logger.Info("user created", zap.Int64("user_id", id))
	return id, nil
}

// Update overwrites the user's fixed column set. An omitted or empty credential keeps the stored hash.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UserRequest) error {
	in, err := s.toInput(req, true)
	if err != nil {
		return appErrors.Internal(err, "Failed to update user")
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		if database.IsUniqueViolation(err) {
			return appErrors.ErrDuplicateEmail
		}
		return appErrors.Internal(err, "Failed to update user")
	}
	return nil
}

// Delete removes the user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err, "Failed to delete user")
	}
	return nil
}

func (s *UserService) toInput(req dto.UserRequest, skipEmptyPassword bool) (dto.UserInput, error) {
	in := dto.UserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Role:         req.Role,
		AddressLine1: req.AddressLine1,
		City:         req.City,
	}
	if req.Password == nil || (skipEmptyPassword && *req.Password == "") {
		return in, nil
	}
	hash, err := hashPassword(*req.Password, s.bcryptCost)
	if err != nil {
		return dto.UserInput{}, err
	}
	in.PasswordHash = &hash
	return in, nil
}
