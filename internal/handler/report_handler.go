package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
	"github.com/trashtrack/trashtrack-api/pkg/response"
)

type reportService interface {
	List(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	Get(ctx context.Context, id int64) (*models.Report, error)
	Create(ctx context.Context, req dto.ReportRequest) (int64, error)
	Update(ctx context.Context, id int64, body []byte) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.ReportStats, error)
	CreatePickupRequest(ctx context.Context, req dto.PickupRequest) (*dto.PickupScheduled, error)
}

type reportScheduleAssigner interface {
	SetForReport(ctx context.Context, reportID int64, scheduleID *int64) (*dto.ReportScheduleAssigned, error)
}

// ReportHandler exposes report CRUD, statistics and scheduling endpoints.
type ReportHandler struct {
	service  reportService
	assigner reportScheduleAssigner
}

// NewReportHandler constructs the handler.
func NewReportHandler(svc reportService, assigner reportScheduleAssigner) *ReportHandler {
	return &ReportHandler{service: svc, assigner: assigner}
}

// List godoc
// @Summary List reports
// @Description List reports, optionally filtered by reporter, collector or status
// @Tags Reports
// @Produce json
// @Param reporter_user_id query int false "Reporter user ID"
// @Param assigned_collector_id query int false "Assigned collector ID"
// @Param status query string false "Status"
// @Success 200 {array} models.Report
// @Failure 400 {object} response.ErrorBody
// @Router /reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid report filter"))
		return
	}

	reports, err := h.service.List(c.Request.Context(), models.ReportFilter{
		ReporterUserID:      query.ReporterUserID,
		AssignedCollectorID: query.AssignedCollectorID,
		Status:              query.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, reports)
}

// Get godoc
// @Summary Get report
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} models.Report
// @Failure 404 {object} response.ErrorBody
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Report not found")
	if !ok {
		return
	}

	report, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// Create godoc
// @Summary Create report
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body dto.ReportRequest true "Report payload"
// @Success 201 {object} dto.ReportCreated
// @Failure 500 {object} response.ErrorBody
// @Router /reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.ReportRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ReportCreated{ReportID: id, Message: "Report created successfully"})
}

// Update godoc
// @Summary Update report
// @Description Write exactly the columns present in the body; null clears a column
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param payload body object true "Columns to write"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.ErrorBody
// @Router /reports/{id} [put]
func (h *ReportHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Report not found")
	if !ok {
		return
	}
	body, ok := rawBody(c)
	if !ok {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, body); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "Report updated successfully")
}

// Delete godoc
// @Summary Delete report
// @Description Delete a report together with its schedule links
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.Message
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Report not found")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "Report deleted successfully")
}

// Stats godoc
// @Summary Report statistics
// @Description Report counts grouped by type, status, date and pickup schedule
// @Tags Reports
// @Produce json
// @Success 200 {object} models.ReportStats
// @Router /reports/stats [get]
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// CreatePickupRequest godoc
// @Summary Schedule a pickup
// @Description File a pickup request report and link it to a pickup schedule in one transaction
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body dto.PickupRequest true "Pickup payload"
// @Success 201 {object} dto.PickupScheduled
// @Failure 400 {object} response.ErrorBody
// @Router /reports/pickup-requests [post]
func (h *ReportHandler) CreatePickupRequest(c *gin.Context) {
	var req dto.PickupRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.service.CreatePickupRequest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// SetSchedule godoc
// @Summary Assign report schedule
// @Description Point the report at one pickup schedule, or clear its links with a null schedule_id
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param payload body dto.SetReportScheduleRequest true "Schedule assignment"
// @Success 200 {object} dto.ReportScheduleAssigned
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /reports/{id}/schedule [put]
func (h *ReportHandler) SetSchedule(c *gin.Context) {
	id, ok := pathID(c, "Report not found")
	if !ok {
		return
	}
	var req dto.SetReportScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.assigner.SetForReport(c.Request.Context(), id, req.ScheduleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}
