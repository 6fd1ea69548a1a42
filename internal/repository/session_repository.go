package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/trashtrack/trashtrack-api/internal/models"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

// SessionRepository keeps issued login sessions in Redis keyed by token id.
type SessionRepository struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewSessionRepository constructs a session repository. A nil client disables persistence.
func NewSessionRepository(client *redis.Client, prefix string, logger *zap.Logger) *SessionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionRepository{client: client, prefix: prefix, logger: logger}
}

func (r *SessionRepository) key(id string) string {
	return r.prefix + id
}

// Save stores the session until its expiry.
func (r *SessionRepository) Save(ctx context.Context, session models.Session) error {
	if r.client == nil {
		return nil
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}

	if err := r.client.Set(ctx, r.key(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", session.ID, err)
	}
	return nil
}

// Find loads a live session. Missing or expired sessions yield appErrors.ErrSessionMiss.
func (r *SessionRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	if r.client == nil {
		return nil, appErrors.ErrSessionMiss
	}

	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.ErrSessionMiss
		}
		return nil, fmt.Errorf("redis get session %s: %w", id, err)
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return &session, nil
}

// Delete revokes the session.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if r.client == nil {
		return nil
	}

	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("redis delete session %s: %w", id, err)
	}
	r.logger.Debug("session revoked", zap.String("session_id", id))
	return nil
}
