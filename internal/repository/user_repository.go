package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
)

const userColumns = `user_id, first_name, last_name, email, hashed_password, user_role, address_line1, city`

// UserRepository provides database access for user management.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every user ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY user_id`
	users := make([]models.User, 0)
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// Create inserts a user and returns the generated id.
func (r *UserRepository) Create(ctx context.Context, in dto.UserInput) (int64, error) {
	const query = `INSERT INTO users (first_name, last_name, email, hashed_password, user_role, address_line1, city)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING user_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, in.FirstName, in.LastName, in.Email, in.PasswordHash, in.Role, in.AddressLine1, in.City); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Update overwrites the fixed user column set. Nil fields are written as NULL except the
// credential, which is only replaced when a new hash is supplied.
func (r *UserRepository) Update(ctx context.Context, id int64, in dto.UserInput) error {
	if in.PasswordHash == nil {
		const query = `UPDATE users SET first_name = $1, last_name = $2, email = $3, user_role = $4, address_line1 = $5, city = $6 WHERE user_id = $7`
		if _, err := r.db.ExecContext(ctx, query, in.FirstName, in.LastName, in.Email, in.Role, in.AddressLine1, in.City, id); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	}

	const query = `UPDATE users SET first_name = $1, last_name = $2, email = $3, hashed_password = $4, user_role = $5, address_line1 = $6, city = $7 WHERE user_id = $8`
	if _, err := r.db.ExecContext(ctx, query, in.FirstName, in.LastName, in.Email, in.PasswordHash, in.Role, in.AddressLine1, in.City, id); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes the user row. Deleting a missing id is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
