package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	"github.com/trashtrack/trashtrack-api/pkg/response"
)

type reportScheduleService interface {
	List(ctx context.Context) ([]models.ReportSchedule, error)
	Get(ctx context.Context, id int64) (*models.ReportSchedule, error)
	Create(ctx context.Context, req dto.ReportScheduleRequest) (int64, error)
	Update(ctx context.Context, id int64, body []byte) error
	Delete(ctx context.Context, id int64) error
}

// ReportScheduleHandler exposes the report to pickup schedule link table.
type ReportScheduleHandler struct {
	service reportScheduleService
}

// NewReportScheduleHandler constructs the handler.
func NewReportScheduleHandler(svc reportScheduleService) *ReportScheduleHandler {
	return &ReportScheduleHandler{service: svc}
}

// List godoc
// @Summary List report schedules
// @Tags ReportSchedules
// @Produce json
// @Success 200 {array} models.ReportSchedule
// @Router /report-schedules [get]
func (h *ReportScheduleHandler) List(c *gin.Context) {
	links, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, links)
}

// Get godoc
// @Summary Get report schedule
// @Tags ReportSchedules
// @Produce json
// @Param id path int true "Report schedule ID"
// @Success 200 {object} models.ReportSchedule
// @Failure 404 {object} response.ErrorBody
// @Router /report-schedules/{id} [get]
func (h *ReportScheduleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Report schedule not found")
	if !ok {
		return
	}

	link, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, link)
}

// Create godoc
// @Summary Create report schedule
// @Tags ReportSchedules
// @Accept json
// @Produce json
// @Param payload body dto.ReportScheduleRequest true "Link payload"
// @Success 201 {object} dto.ReportScheduleCreated
// @Router /report-schedules [post]
func (h *ReportScheduleHandler) Create(c *gin.Context) {
	var req dto.ReportScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ReportScheduleCreated{ReportScheduleID: id, Message: "Report schedule created successfully"})
}

// Update godoc
// @Summary Update report schedule
// @Description Write exactly the columns present in the body
// @Tags ReportSchedules
// @Accept json
// @Produce json
// @Param id path int true "Report schedule ID"
// @Param payload body object true "Columns to write"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.ErrorBody
// @Router /report-schedules/{id} [put]
func (h *ReportScheduleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Report schedule not found")
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
	response.Ack(c, "Report schedule updated successfully")
}

// Delete godoc
// @Summary Delete report schedule
// @Tags ReportSchedules
// @Produce json
// @Param id path int true "Report schedule ID"
// @Success 200 {object} response.Message
// @Router /report-schedules/{id} [delete]
func (h *ReportScheduleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Report schedule not found")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "Report schedule deleted successfully")
}
