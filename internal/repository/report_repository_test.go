package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
)

var reportRowColumns = []string{"report_id", "reporter_user_id", "report_type", "location_address", "latitude", "longitude", "description", "report_date", "status", "assigned_collector_id"}

func TestReportRepositoryListWithoutFilter(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows(reportRowColumns).
		AddRow(int64(1), int64(1), "Illegal Dumping", "123 Main St", 40.7128, -74.006, "pile", "2023-10-01", "Pending", int64(3))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reports") + "$").WillReturnRows(rows)

	reports, err := repo.List(context.Background(), models.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "2023-10-01", *reports[0].ReportDate)
	assert.Equal(t, 40.7128, *reports[0].Latitude)
	assert.Equal(t, int64(3), *reports[0].AssignedCollectorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	status := "Pending"
	mock.ExpectQuery(regexp.QuoteMeta("FROM reports WHERE reporter_user_id = $1 AND status = $2")).
		WithArgs(int64(2), "Pending").
		WillReturnRows(sqlmock.NewRows(reportRowColumns))

	reports, err := repo.List(context.Background(), models.ReportFilter{ReporterUserID: int64Ptr(2), Status: &status})
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.NotNil(t, reports)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryPatchWritesOnlySuppliedColumns(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	patch, err := dto.ReportPatchSchema.Parse([]byte(`{"status":"Resolved"}`))
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reports SET status = $1 WHERE report_id = $2")).
		WithArgs("Resolved", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Patch(context.Background(), 5, patch))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryStats(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reports")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY report_type ORDER BY report_type")).
		WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).AddRow("Illegal Dumping", int64(2)).AddRow("Other", int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY status ORDER BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).AddRow("Pending", int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY report_date ORDER BY report_date")).
		WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).AddRow("2023-10-01", int64(1)).AddRow("2023-10-02", int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM report_schedules GROUP BY schedule_id")).
		WillReturnRows(sqlmock.NewRows([]string{"schedule_id", "count"}).AddRow(int64(1), int64(2)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, []models.CountByKey{{Key: "Illegal Dumping", Count: 2}, {Key: "Other", Count: 1}}, stats.ByType)
	assert.Equal(t, "2023-10-01", stats.ByDate[0].Key)
	assert.Equal(t, []models.ScheduleUsage{{ScheduleID: 1, Count: 2}}, stats.ScheduleUsage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryCreatePickupRequest(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reports (reporter_user_id, report_type, location_address, description, report_date, status)")).
		WithArgs(int64(2), "Pickup Request", nil, "Scheduled pickup for Electronics", "2023-11-01", "Scheduled").
		WillReturnRows(sqlmock.NewRows([]string{"report_id"}).AddRow(int64(40)))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO report_schedules (report_id, schedule_id)")).
		WithArgs(int64(40), int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"report_schedule_id"}).AddRow(int64(9)))
	mock.ExpectCommit()

	reportID, linkID, err := repo.CreatePickupRequest(context.Background(), dto.PickupRequest{
		ReporterUserID: 2,
		ScheduleID:     6,
		WasteType:      "Electronics",
		ReportDate:     "2023-11-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40), reportID)
	assert.Equal(t, int64(9), linkID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryCreatePickupRequestRollsBack(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reports")).
		WillReturnRows(sqlmock.NewRows([]string{"report_id"}).AddRow(int64(41)))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO report_schedules")).
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	_, _, err := repo.CreatePickupRequest(context.Background(), dto.PickupRequest{ReporterUserID: 2, ScheduleID: 999, WasteType: "Glass", ReportDate: "2023-11-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert pickup link")
	assert.NoError(t, mock.ExpectationsWereMet())
}
