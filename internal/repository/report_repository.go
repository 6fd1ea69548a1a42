package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
)

const reportColumns = `report_id, reporter_user_id, report_type, location_address, latitude, longitude, description, to_char(report_date, 'YYYY-MM-DD') AS report_date, status, assigned_collector_id`

// ReportRepository persists citizen reports and computes their aggregates.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs the repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// List returns reports matching the optional exact-match filters.
func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	var conditions []string
	var args []interface{}

	if filter.ReporterUserID != nil {
		args = append(args, *filter.ReporterUserID)
		conditions = append(conditions, fmt.Sprintf("reporter_user_id = $%d", len(args)))
	}
	if filter.AssignedCollectorID != nil {
		args = append(args, *filter.AssignedCollectorID)
		conditions = append(conditions, fmt.Sprintf("assigned_collector_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + reportColumns + ` FROM reports`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	reports := make([]models.Report, 0)
	if err := r.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// FindByID returns one report.
func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*models.Report, error) {
	const query = `SELECT ` + reportColumns + ` FROM reports WHERE report_id = $1`
	var report models.Report
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return &report, nil
}

// Create inserts a report and returns its id.
func (r *ReportRepository) Create(ctx context.Context, in dto.ReportRequest) (int64, error) {
	const query = `INSERT INTO reports (reporter_user_id, report_type, location_address, latitude, longitude, description, report_date, status, assigned_collector_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING report_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query,
		in.ReporterUserID,
		in.ReportType,
		in.LocationAddress,
		in.Latitude,
		in.Longitude,
		in.Description,
		in.ReportDate,
		in.Status,
		in.AssignedCollectorID,
	); err != nil {
		return 0, fmt.Errorf("create report: %w", err)
	}
	return id, nil
}

// Patch writes exactly the columns present in the patch.
func (r *ReportRepository) Patch(ctx context.Context, id int64, patch dto.Patch) error {
	query, args := buildPatchUpdate("reports", "report_id", id, patch)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("patch report: %w", err)
	}
	return nil
}

// Delete removes a report; its schedule links cascade.
func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reports WHERE report_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

// Stats groups reports by type, status and date and counts schedule links.
func (r *ReportRepository) Stats(ctx context.Context) (*models.ReportStats, error) {
	stats := &models.ReportStats{
		ByType:        make([]models.CountByKey, 0),
		ByStatus:      make([]models.CountByKey, 0),
		ByDate:        make([]models.CountByKey, 0),
		ScheduleUsage: make([]models.ScheduleUsage, 0),
	}

	const totalQuery = `SELECT COUNT(*) FROM reports`
	if err := r.db.GetContext(ctx, &stats.Total, totalQuery); err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	const byTypeQuery = `SELECT report_type AS key, COUNT(*) AS count FROM reports GROUP BY report_type ORDER BY report_type`
	if err := r.db.SelectContext(ctx, &stats.ByType, byTypeQuery); err != nil {
		return nil, fmt.Errorf("group reports by type: %w", err)
	}

	const byStatusQuery = `SELECT status AS key, COUNT(*) AS count FROM reports GROUP BY status ORDER BY status`
	if err := r.db.SelectContext(ctx, &stats.ByStatus, byStatusQuery); err != nil {
		return nil, fmt.Errorf("group reports by status: %w", err)
	}

	const byDateQuery = `SELECT to_char(report_date, 'YYYY-MM-DD') AS key, COUNT(*) AS count FROM reports GROUP BY report_date ORDER BY report_date`
	if err := r.db.SelectContext(ctx, &stats.ByDate, byDateQuery); err != nil {
		return nil, fmt.Errorf("group reports by date: %w", err)
	}

	const usageQuery = `SELECT schedule_id, COUNT(*) AS count FROM report_schedules GROUP BY schedule_id ORDER BY schedule_id`
	if err := r.db.SelectContext(ctx, &stats.ScheduleUsage, usageQuery); err != nil {
		return nil, fmt.Errorf("count schedule usage: %w", err)
	}

	return stats, nil
}

// CreatePickupRequest files a pickup report and links it to the schedule in one transaction.
// A missing location falls back to the reporter's address.
func (r *ReportRepository) CreatePickupRequest(ctx context.Context, req dto.PickupRequest) (reportID, linkID int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin pickup transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertReport = `INSERT INTO reports (reporter_user_id, report_type, location_address, description, report_date, status)
VALUES ($1, $2, COALESCE($3, (SELECT address_line1 FROM users WHERE user_id = $1), 'User Address'), $4, $5, $6)
RETURNING report_id`
	description := fmt.Sprintf("Scheduled pickup for %s", req.WasteType)
	if err = tx.GetContext(ctx, &reportID, insertReport,
		req.ReporterUserID,
		models.ReportTypePickupRequest,
		req.LocationAddress,
		description,
		req.ReportDate,
		models.ReportStatusScheduled,
	); err != nil {
		return 0, 0, fmt.Errorf("insert pickup report: %w", err)
	}

	const insertLink = `INSERT INTO report_schedules (report_id, schedule_id) VALUES ($1, $2) RETURNING report_schedule_id`
	if err = tx.GetContext(ctx, &linkID, insertLink, reportID, req.ScheduleID); err != nil {
		return 0, 0, fmt.Errorf("insert pickup link: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit pickup transaction: %w", err)
	}
	return reportID, linkID, nil
}
