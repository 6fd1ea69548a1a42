package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trashtrack/trashtrack-api/internal/dto"
)

const (
	lockReportSQL = "SELECT report_id FROM reports WHERE report_id = $1 FOR UPDATE"
	lockLinksSQL  = "SELECT report_schedule_id FROM report_schedules WHERE report_id = $1 ORDER BY report_schedule_id FOR UPDATE"
)

func expectReportLocked(mock sqlmock.Sqlmock, reportID int64, links ...int64) {
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockReportSQL)).
		WithArgs(reportID).
		WillReturnRows(sqlmock.NewRows([]string{"report_id"}).AddRow(reportID))
	rows := sqlmock.NewRows([]string{"report_schedule_id"})
	for _, id := range links {
		rows.AddRow(id)
	}
	mock.ExpectQuery(regexp.QuoteMeta(lockLinksSQL)).WithArgs(reportID).WillReturnRows(rows)
}

func TestSetForReportInsertsWhenUnlinked(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportScheduleRepository(db)

	expectReportLocked(mock, 5)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO report_schedules (report_id, schedule_id) VALUES ($1, $2) RETURNING report_schedule_id")).
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"report_schedule_id"}).AddRow(int64(30)))
	mock.ExpectCommit()

	id, err := repo.SetForReport(context.Background(), 5, int64Ptr(2))
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(30), *id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetForReportUpdatesFirstLinkAndDropsSurplus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportScheduleRepository(db)

	expectReportLocked(mock, 5, 30, 31)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE report_schedules SET schedule_id = $1 WHERE report_schedule_id = $2")).
		WithArgs(int64(4), int64(30)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM report_schedules WHERE report_id = $1 AND report_schedule_id <> $2")).
		WithArgs(int64(5), int64(30)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.SetForReport(context.Background(), 5, int64Ptr(4))
	require.NoError(t, err)
	assert.Equal(t, int64(30), *id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetForReportClearsLinks(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportScheduleRepository(db)

	expectReportLocked(mock, 5, 30)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM report_schedules WHERE report_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.SetForReport(context.Background(), 5, nil)
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetForReportClearWithoutLinksIsNoop(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportScheduleRepository(db)

	expectReportLocked(mock, 5)
	mock.ExpectCommit()

	id, err := repo.SetForReport(context.Background(), 5, nil)
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetForReportMissingReport(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportScheduleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockReportSQL)).WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.SetForReport(context.Background(), 404, int64Ptr(1))
	assert.ErrorIs(t, err, ErrReportNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportSchedulePatch(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportScheduleRepository(db)

	patch, err := dto.ReportSchedulePatchSchema.Parse([]byte(`{"schedule_id":3}`))
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE report_schedules SET schedule_id = $1 WHERE report_schedule_id = $2")).
		WithArgs("3", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Patch(context.Background(), 8, patch))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportScheduleFindByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportScheduleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM report_schedules WHERE report_schedule_id = $1")).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"report_schedule_id", "report_id", "schedule_id"}).AddRow(int64(8), int64(1), int64(2)))

	link, err := repo.FindByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, int64(2), link.ScheduleID)
}
