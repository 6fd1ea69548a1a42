package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
)

const pickupScheduleColumns = `schedule_id, day_of_week, to_char(time_slot, 'HH24:MI:SS') AS time_slot, is_active`

// PickupScheduleRepository persists recurring collection slots.
type PickupScheduleRepository struct {
	db *sqlx.DB
}

// NewPickupScheduleRepository constructs the repository.
func NewPickupScheduleRepository(db *sqlx.DB) *PickupScheduleRepository {
	return &PickupScheduleRepository{db: db}
}

// List returns all pickup schedules.
func (r *PickupScheduleRepository) List(ctx context.Context) ([]models.PickupSchedule, error) {
	const query = `SELECT ` + pickupScheduleColumns + ` FROM pickup_schedules`
	schedules := make([]models.PickupSchedule, 0)
	if err := r.db.SelectContext(ctx, &schedules, query); err != nil {
		return nil, fmt.Errorf("list pickup schedules: %w", err)
	}
	return schedules, nil
}

// FindByID returns one pickup schedule.
func (r *PickupScheduleRepository) FindByID(ctx context.Context, id int64) (*models.PickupSchedule, error) {
	const query = `SELECT ` + pickupScheduleColumns + ` FROM pickup_schedules WHERE schedule_id = $1`
	var schedule models.PickupSchedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find pickup schedule: %w", err)
	}
	return &schedule, nil
}

// Create inserts a pickup schedule and returns its id.
func (r *PickupScheduleRepository) Create(ctx context.Context, in dto.PickupScheduleRequest) (int64, error) {
	const query = `INSERT INTO pickup_schedules (day_of_week, time_slot, is_active) VALUES ($1, $2, $3) RETURNING schedule_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, in.DayOfWeek, in.TimeSlot, in.IsActive); err != nil {
		return 0, fmt.Errorf("create pickup schedule: %w", err)
	}
	return id, nil
}

// Update overwrites every mutable column; nil fields become NULL.
func (r *PickupScheduleRepository) Update(ctx context.Context, id int64, in dto.PickupScheduleRequest) error {
	const query = `UPDATE pickup_schedules SET day_of_week = $1, time_slot = $2, is_active = $3 WHERE schedule_id = $4`
	if _, err := r.db.ExecContext(ctx, query, in.DayOfWeek, in.TimeSlot, in.IsActive, id); err != nil {
		return fmt.Errorf("update pickup schedule: %w", err)
	}
	return nil
}

// Delete removes a pickup schedule.
func (r *PickupScheduleRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM pickup_schedules WHERE schedule_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete pickup schedule: %w", err)
	}
	return nil
}
