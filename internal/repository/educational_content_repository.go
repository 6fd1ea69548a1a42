package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
)

const educationalContentColumns = `content_id, author_user_id, title, topic, content_body, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SS') AS created_at`

// EducationalContentRepository persists educational articles.
type EducationalContentRepository struct {
	db *sqlx.DB
}

// NewEducationalContentRepository constructs the repository.
func NewEducationalContentRepository(db *sqlx.DB) *EducationalContentRepository {
	return &EducationalContentRepository{db: db}
}

// List returns all content ordered by id.
func (r *EducationalContentRepository) List(ctx context.Context) ([]models.EducationalContent, error) {
	const query = `SELECT ` + educationalContentColumns + ` FROM educational_content ORDER BY content_id`
	items := make([]models.EducationalContent, 0)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list educational content: %w", err)
	}
	return items, nil
}

// FindByID returns one content item.
func (r *EducationalContentRepository) FindByID(ctx context.Context, id int64) (*models.EducationalContent, error) {
	const query = `SELECT ` + educationalContentColumns + ` FROM educational_content WHERE content_id = $1`
	var item models.EducationalContent
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find educational content: %w", err)
	}
	return &item, nil
}

// Create inserts a content item and returns its id.
func (r *EducationalContentRepository) Create(ctx context.Context, in dto.EducationalContentRequest) (int64, error) {
	const query = `INSERT INTO educational_content (author_user_id, title, topic, content_body, created_at)
VALUES ($1, $2, $3, $4, $5) RETURNING content_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, in.AuthorUserID, in.Title, in.Topic, in.ContentBody, in.CreatedAt); err != nil {
		return 0, fmt.Errorf("create educational content: %w", err)
	}
	return id, nil
}

// Update overwrites every mutable column; nil fields become NULL.
func (r *EducationalContentRepository) Update(ctx context.Context, id int64, in dto.EducationalContentRequest) error {
	const query = `UPDATE educational_content SET author_user_id = $1, title = $2, topic = $3, content_body = $4, created_at = $5 WHERE content_id = $6`
	if _, err := r.db.ExecContext(ctx, query, in.AuthorUserID, in.Title, in.Topic, in.ContentBody, in.CreatedAt, id); err != nil {
		return fmt.Errorf("update educational content: %w", err)
	}
	return nil
}

// Delete removes a content item.
func (r *EducationalContentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM educational_content WHERE content_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete educational content: %w", err)
	}
	return nil
}
