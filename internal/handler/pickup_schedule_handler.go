package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	"github.com/trashtrack/trashtrack-api/pkg/response"
)

type pickupScheduleService interface {
	List(ctx context.Context) ([]models.PickupSchedule, error)
	Get(ctx context.Context, id int64) (*models.PickupSchedule, error)
	Create(ctx context.Context, req dto.PickupScheduleRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.PickupScheduleRequest) error
	Delete(ctx context.Context, id int64) error
}

// PickupScheduleHandler exposes pickup schedule CRUD.
type PickupScheduleHandler struct {
	service pickupScheduleService
}

// NewPickupScheduleHandler constructs the handler.
func NewPickupScheduleHandler(svc pickupScheduleService) *PickupScheduleHandler {
	return &PickupScheduleHandler{service: svc}
}

// List godoc
// @Summary List pickup schedules
// @Tags PickupSchedules
// @Produce json
// @Success 200 {array} models.PickupSchedule
// @Router /pickup-schedules [get]
func (h *PickupScheduleHandler) List(c *gin.Context) {
	schedules, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, schedules)
}

// Get godoc
// @Summary Get pickup schedule
// @Tags PickupSchedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} models.PickupSchedule
// @Failure 404 {object} response.ErrorBody
// @Router /pickup-schedules/{id} [get]
func (h *PickupScheduleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Pickup schedule not found")
	if !ok {
		return
	}

	schedule, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, schedule)
}

// Create godoc
// @Summary Create pickup schedule
// @Tags PickupSchedules
// @Accept json
// @Produce json
// @Param payload body dto.PickupScheduleRequest true "Schedule payload"
// @Success 201 {object} dto.PickupScheduleCreated
// @Failure 500 {object} response.ErrorBody
// @Router /pickup-schedules [post]
func (h *PickupScheduleHandler) Create(c *gin.Context) {
	var req dto.PickupScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.PickupScheduleCreated{ScheduleID: id, Message: "Pickup schedule created successfully"})
}

// Update godoc
// @Summary Update pickup schedule
// @Description Overwrite every column; omitted fields become null
// @Tags PickupSchedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param payload body dto.PickupScheduleRequest true "Schedule payload"
// @Success 200 {object} response.Message
// @Router /pickup-schedules/{id} [put]
func (h *PickupScheduleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Pickup schedule not found")
	if !ok {
		return
	}
	var req dto.PickupScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "Pickup schedule updated successfully")
}

// Delete godoc
// @Summary Delete pickup schedule
// @Tags PickupSchedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} response.Message
// @Router /pickup-schedules/{id} [delete]
func (h *PickupScheduleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Pickup schedule not found")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "Pickup schedule deleted successfully")
}
