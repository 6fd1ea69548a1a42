package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/trashtrack/trashtrack-api/internal/models"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type authUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// SessionStore records issued tokens so they can be revoked before expiry.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

type loginRecorder interface {
	RecordLogin(outcome string)
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	Issuer            string
}

// AuthService provides authentication use cases.
type AuthService struct {
	repo      authUserRepository
	sessions  SessionStore
	metrics   loginRecorder
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance. A nil session store makes tokens stateless.
func NewAuthService(repo authUserRepository, sessions SessionStore, metrics loginRecorder, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, sessions: sessions, metrics: metrics, validator: validate, logger: logger, config: config}
}

// Login verifies the credential and issues an access token. Unknown email and wrong password
// produce the same error.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.recordLogin("rejected")
			s.logger.Debug("login rejected", zap.String("reason", "unknown email"))
			return nil, appErrors.ErrInvalidCredentials
		}
		s.recordLogin("error")
		return nil, appErrors.Internal(err, "Login failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordLogin("rejected")
		s.logger.Debug("login rejected", zap.Int64("user_id", user.ID), zap.String("reason", "password mismatch"))
		return nil, appErrors.ErrInvalidCredentials
	}

	token, claims, err := s.generateAccessToken(user)
	if err != nil {
		s.recordLogin("error")
		return nil, appErrors.Internal(err, "Login failed")
	}

	if s.sessions != nil {
		session := models.Session{
			ID:        claims.ID,
			UserID:    user.ID,
			IP:        req.IP,
			UserAgent: req.UserAgent,
			CreatedAt: claims.IssuedAt.Time,
			ExpiresAt: claims.ExpiresAt.Time,
		}
		if err := s.sessions.Save(ctx, session); err != nil {
			s.logger.Warn("failed to persist session", zap.Int64("user_id", user.ID), zap.Error(err))
		}
	}

	s.recordLogin("success")
	return &models.LoginResponse{
		UserInfo:  user.Projection(),
		Token:     token,
		ExpiresIn: int64(s.config.AccessTokenExpiry.Seconds()),
	}, nil
}

// ValidateToken parses an access token and, when sessions are tracked, checks it was not revoked.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.AccessTokenSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "Invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Invalid token claims")
	}

	if s.sessions == nil {
		return claims, nil
	}

	session, err := s.sessions.Find(ctx, claims.ID)
	if err != nil {
		if !errors.Is(err, appErrors.ErrSessionMiss) {
			s.logger.Warn("session lookup failed", zap.String("session_id", claims.ID), zap.Error(err))
		}
		return nil, appErrors.ErrSessionMiss
	}
	if session.UserID != claims.UserID {
		return nil, appErrors.ErrSessionMiss
	}
	return claims, nil
}

// Me reloads the authenticated user's row.
func (s *AuthService) Me(ctx context.Context, claims *models.JWTClaims) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "User no longer exists")
		}
		return nil, appErrors.Internal(err, "Failed to fetch user")
	}
	return user, nil
}

// Logout revokes the session behind the token. Without a session store it does nothing.
func (s *AuthService) Logout(ctx context.Context, claims *models.JWTClaims) error {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return appErrors.Internal(err, "Logout failed")
	}
	return nil
}

func (s *AuthService) recordLogin(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordLogin(outcome)
	}
}

func (s *AuthService) generateAccessToken(user *models.User) (string, *models.JWTClaims, error) {
	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.AccessTokenExpiry)
	claims := &models.JWTClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.AccessTokenSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}
