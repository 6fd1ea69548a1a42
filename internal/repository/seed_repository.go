package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trashtrack/trashtrack-api/internal/dto"
)

// SeedRepository replaces the contents of every table with a fixture set.
type SeedRepository struct {
	db *sqlx.DB
}

// NewSeedRepository constructs the repository.
func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// Seed clears all tables in dependency order and inserts the dataset in one transaction.
func (r *SeedRepository) Seed(ctx context.Context, data dto.SeedDataset) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"report_schedules", "reports", "educational_content", "pickup_schedules", "users"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	userIDs := make([]int64, len(data.Users))
	for i, u := range data.Users {
		const query = `INSERT INTO users (first_name, last_name, email, hashed_password, user_role, address_line1, city)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING user_id`
		if err = tx.GetContext(ctx, &userIDs[i], query, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role, u.AddressLine1, u.City); err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
	}

	scheduleIDs := make([]int64, len(data.Schedules))
	for i, s := range data.Schedules {
		const query = `INSERT INTO pickup_schedules (day_of_week, time_slot, is_active) VALUES ($1, $2, $3) RETURNING schedule_id`
		if err = tx.GetContext(ctx, &scheduleIDs[i], query, s.DayOfWeek, s.TimeSlot, s.IsActive); err != nil {
			return fmt.Errorf("seed pickup schedule %d: %w", i, err)
		}
	}

	for i, c := range data.Content {
		const query = `INSERT INTO educational_content (author_user_id, title, topic, content_body, created_at) VALUES ($1, $2, $3, $4, $5)`
		if _, err = tx.ExecContext(ctx, query, userIDs[c.AuthorIndex], c.Title, c.Topic, c.ContentBody, c.CreatedAt); err != nil {
			return fmt.Errorf("seed educational content %d: %w", i, err)
		}
	}

	reportIDs := make([]int64, len(data.Reports))
	for i, rep := range data.Reports {
		var collector *int64
		if rep.CollectorIndex != nil {
			collector = &userIDs[*rep.CollectorIndex]
		}
		const query = `INSERT INTO reports (reporter_user_id, report_type, location_address, latitude, longitude, description, report_date, status, assigned_collector_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING report_id`
		if err = tx.GetContext(ctx, &reportIDs[i], query,
			userIDs[rep.ReporterIndex],
			rep.ReportType,
			rep.LocationAddress,
			rep.Latitude,
			rep.Longitude,
			rep.Description,
			rep.ReportDate,
			rep.Status,
			collector,
		); err != nil {
			return fmt.Errorf("seed report %d: %w", i, err)
		}
	}

	for i, l := range data.Links {
		const query = `INSERT INTO report_schedules (report_id, schedule_id) VALUES ($1, $2)`
		if _, err = tx.ExecContext(ctx, query, reportIDs[l.ReportIndex], scheduleIDs[l.ScheduleIndex]); err != nil {
			return fmt.Errorf("seed report schedule %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
