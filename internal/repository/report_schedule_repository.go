package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
)

const reportScheduleColumns = `report_schedule_id, report_id, schedule_id`

// ErrReportNotFound is returned by SetForReport when the report row does not exist.
var ErrReportNotFound = errors.New("report not found")

// ReportScheduleRepository persists report to schedule links.
type ReportScheduleRepository struct {
	db *sqlx.DB
}

// NewReportScheduleRepository constructs the repository.
func NewReportScheduleRepository(db *sqlx.DB) *ReportScheduleRepository {
	return &ReportScheduleRepository{db: db}
}

// List returns all links.
func (r *ReportScheduleRepository) List(ctx context.Context) ([]models.ReportSchedule, error) {
	const query = `SELECT ` + reportScheduleColumns + ` FROM report_schedules`
	links := make([]models.ReportSchedule, 0)
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, fmt.Errorf("list report schedules: %w", err)
	}
	return links, nil
}

// FindByID returns one link.
func (r *ReportScheduleRepository) FindByID(ctx context.Context, id int64) (*models.ReportSchedule, error) {
	const query = `SELECT ` + reportScheduleColumns + ` FROM report_schedules WHERE report_schedule_id = $1`
	var link models.ReportSchedule
	if err := r.db.GetContext(ctx, &link, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find report schedule: %w", err)
	}
	return &link, nil
}

// Create inserts a link and returns its id.
func (r *ReportScheduleRepository) Create(ctx context.Context, in dto.ReportScheduleRequest) (int64, error) {
	const query = `INSERT INTO report_schedules (report_id, schedule_id) VALUES ($1, $2) RETURNING report_schedule_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, in.ReportID, in.ScheduleID); err != nil {
		return 0, fmt.Errorf("create report schedule: %w", err)
	}
	return id, nil
}

// Patch writes exactly the columns present in the patch.
func (r *ReportScheduleRepository) Patch(ctx context.Context, id int64, patch dto.Patch) error {
	query, args := buildPatchUpdate("report_schedules", "report_schedule_id", id, patch)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("patch report schedule: %w", err)
	}
	return nil
}

// Delete removes a link.
func (r *ReportScheduleRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM report_schedules WHERE report_schedule_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete report schedule: %w", err)
	}
	return nil
}

// SetForReport makes scheduleID the only schedule linked to the report, or removes every link
// when scheduleID is nil. It returns the surviving link id, if any.
func (r *ReportScheduleRepository) SetForReport(ctx context.Context, reportID int64, scheduleID *int64) (linkID *int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin report schedule transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// The report row lock serialises concurrent assignments, including ones that find no link yet.
	var lockedID int64
	const reportQuery = `SELECT report_id FROM reports WHERE report_id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &lockedID, reportQuery, reportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrReportNotFound
			return nil, err
		}
		return nil, fmt.Errorf("lock report: %w", err)
	}

	var current []int64
	const lockQuery = `SELECT report_schedule_id FROM report_schedules WHERE report_id = $1 ORDER BY report_schedule_id FOR UPDATE`
	if err = tx.SelectContext(ctx, &current, lockQuery, reportID); err != nil {
		return nil, fmt.Errorf("lock report schedules: %w", err)
	}

	switch {
	case scheduleID == nil:
		if len(current) > 0 {
			const deleteQuery = `DELETE FROM report_schedules WHERE report_id = $1`
			if _, err = tx.ExecContext(ctx, deleteQuery, reportID); err != nil {
				return nil, fmt.Errorf("clear report schedules: %w", err)
			}
		}
	case len(current) == 0:
		var id int64
		const insertQuery = `INSERT INTO report_schedules (report_id, schedule_id) VALUES ($1, $2) RETURNING report_schedule_id`
		if err = tx.GetContext(ctx, &id, insertQuery, reportID, *scheduleID); err != nil {
			return nil, fmt.Errorf("insert report schedule: %w", err)
		}
		linkID = &id
	default:
		id := current[0]
		const updateQuery = `UPDATE report_schedules SET schedule_id = $1 WHERE report_schedule_id = $2`
		if _, err = tx.ExecContext(ctx, updateQuery, *scheduleID, id); err != nil {
			return nil, fmt.Errorf("update report schedule: %w", err)
		}
		if len(current) > 1 {
			const surplusQuery = `DELETE FROM report_schedules WHERE report_id = $1 AND report_schedule_id <> $2`
			if _, err = tx.ExecContext(ctx, surplusQuery, reportID, id); err != nil {
				return nil, fmt.Errorf("delete surplus report schedules: %w", err)
			}
		}
		linkID = &id
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit report schedule transaction: %w", err)
	}
	return linkID, nil
}
