package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type reportServiceMock struct {
	filter     models.ReportFilter
	body       []byte
	updateErr  error
	pickup     *dto.PickupScheduled
	pickupErr  error
	stats      *models.ReportStats
	updateHits int
}

func (m *reportServiceMock) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	m.filter = filter
	return []models.Report{}, nil
}

func (m *reportServiceMock) Get(ctx context.Context, id int64) (*models.Report, error) {
	return nil, appErrors.Clone(appErrors.ErrNotFound, "Report not found")
}

func (m *reportServiceMock) Create(ctx context.Context, req dto.ReportRequest) (int64, error) {
	return 31, nil
}

func (m *reportServiceMock) Update(ctx context.Context, id int64, body []byte) error {
	m.updateHits++
	m.body = body
	return m.updateErr
}

func (m *reportServiceMock) Delete(ctx context.Context, id int64) error {
	return nil
}

func (m *reportServiceMock) Stats(ctx context.Context) (*models.ReportStats, error) {
	return m.stats, nil
}

func (m *reportServiceMock) CreatePickupRequest(ctx context.Context, req dto.PickupRequest) (*dto.PickupScheduled, error) {
	return m.pickup, m.pickupErr
}

type assignerMock struct {
	reportID   int64
	scheduleID *int64
	resp       *dto.ReportScheduleAssigned
	err        error
}

func (m *assignerMock) SetForReport(ctx context.Context, reportID int64, scheduleID *int64) (*dto.ReportScheduleAssigned, error) {
	m.reportID = reportID
	m.scheduleID = scheduleID
	return m.resp, m.err
}

func TestReportHandlerListFilters(t *testing.T) {
	svc := &reportServiceMock{}
	h := NewReportHandler(svc, &assignerMock{})

	c, w := newGinContext(http.MethodGet, "/reports?reporter_user_id=2&status=Pending", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	require.NotNil(t, svc.filter.ReporterUserID)
	assert.Equal(t, int64(2), *svc.filter.ReporterUserID)
	require.NotNil(t, svc.filter.Status)
	assert.Equal(t, "Pending", *svc.filter.Status)
	assert.Nil(t, svc.filter.AssignedCollectorID)
}

func TestReportHandlerListRejectsBadFilter(t *testing.T) {
	h := NewReportHandler(&reportServiceMock{}, &assignerMock{})

	c, w := newGinContext(http.MethodGet, "/reports?assigned_collector_id=abc", nil)
	h.List(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandlerCreate(t *testing.T) {
	h := NewReportHandler(&reportServiceMock{}, &assignerMock{})

	c, w := newGinContext(http.MethodPost, "/reports", []byte(`{"reporter_user_id":2,"report_type":"Illegal Dumping","location_address":"1 Main St","report_date":"2024-01-15","status":"Pending"}`))
	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"report_id":31,"message":"Report created successfully"}`, w.Body.String())
}

func TestReportHandlerUpdateForwardsRawBody(t *testing.T) {
	svc := &reportServiceMock{}
	h := NewReportHandler(svc, &assignerMock{})

	c, w := newGinContext(http.MethodPut, "/reports/5", []byte(`{"status":"Resolved"}`))
	withID(c, "5")
	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Report updated successfully"}`, w.Body.String())
	assert.JSONEq(t, `{"status":"Resolved"}`, string(svc.body))
}

func TestReportHandlerUpdateEmptyBody(t *testing.T) {
	svc := &reportServiceMock{updateErr: appErrors.Clone(appErrors.ErrEmptyUpdate, "No fields to update")}
	h := NewReportHandler(svc, &assignerMock{})

	c, w := newGinContext(http.MethodPut, "/reports/5", []byte(`{}`))
	withID(c, "5")
	h.Update(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No fields to update"}`, w.Body.String())
}

func TestReportHandlerUpdateNonNumericID(t *testing.T) {
	svc := &reportServiceMock{}
	h := NewReportHandler(svc, &assignerMock{})

	c, w := newGinContext(http.MethodPut, "/reports/x", []byte(`{"status":"Resolved"}`))
	withID(c, "x")
	h.Update(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.updateHits)
}

func TestReportHandlerGetMissing(t *testing.T) {
	h := NewReportHandler(&reportServiceMock{}, &assignerMock{})

	c, w := newGinContext(http.MethodGet, "/reports/404", nil)
	withID(c, "404")
	h.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Report not found"}`, w.Body.String())
}

func TestReportHandlerStats(t *testing.T) {
	stats := &models.ReportStats{
		Total:  2,
		ByType: []models.CountByKey{{Key: "Illegal Dumping", Count: 2}},
	}
	h := NewReportHandler(&reportServiceMock{stats: stats}, &assignerMock{})

	c, w := newGinContext(http.MethodGet, "/reports/stats", nil)
	h.Stats(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total"])
}

func TestReportHandlerCreatePickupRequest(t *testing.T) {
	svc := &reportServiceMock{pickup: &dto.PickupScheduled{ReportID: 40, ReportScheduleID: 9, Message: "Pickup scheduled successfully"}}
	h := NewReportHandler(svc, &assignerMock{})

	c, w := newGinContext(http.MethodPost, "/reports/pickup-requests", []byte(`{"reporter_user_id":2,"schedule_id":1,"waste_type":"Recycling","report_date":"2024-03-01"}`))
	h.CreatePickupRequest(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"report_id":40,"report_schedule_id":9,"message":"Pickup scheduled successfully"}`, w.Body.String())
}

func TestReportHandlerSetSchedule(t *testing.T) {
	linkID := int64(3)
	assigner := &assignerMock{resp: &dto.ReportScheduleAssigned{Message: "Report schedule assigned successfully", ReportScheduleID: &linkID}}
	h := NewReportHandler(&reportServiceMock{}, assigner)

	c, w := newGinContext(http.MethodPut, "/reports/8/schedule", []byte(`{"schedule_id":2}`))
	withID(c, "8")
	h.SetSchedule(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Report schedule assigned successfully","report_schedule_id":3}`, w.Body.String())
	assert.Equal(t, int64(8), assigner.reportID)
	require.NotNil(t, assigner.scheduleID)
	assert.Equal(t, int64(2), *assigner.scheduleID)
}

func TestReportHandlerClearSchedule(t *testing.T) {
	assigner := &assignerMock{resp: &dto.ReportScheduleAssigned{Message: "Report schedule cleared successfully"}}
	h := NewReportHandler(&reportServiceMock{}, assigner)

	c, w := newGinContext(http.MethodPut, "/reports/8/schedule", []byte(`{"schedule_id":null}`))
	withID(c, "8")
	h.SetSchedule(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Report schedule cleared successfully","report_schedule_id":null}`, w.Body.String())
	assert.Nil(t, assigner.scheduleID)
}

func TestReportHandlerSetScheduleMissingReport(t *testing.T) {
	assigner := &assignerMock{err: appErrors.Clone(appErrors.ErrNotFound, "Report not found")}
	h := NewReportHandler(&reportServiceMock{}, assigner)

	c, w := newGinContext(http.MethodPut, "/reports/77/schedule", []byte(`{"schedule_id":1}`))
	withID(c, "77")
	h.SetSchedule(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}
