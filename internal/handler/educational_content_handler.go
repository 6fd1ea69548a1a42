package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	"github.com/trashtrack/trashtrack-api/pkg/response"
)

type educationalContentService interface {
	List(ctx context.Context) ([]models.EducationalContent, error)
	Get(ctx context.Context, id int64) (*models.EducationalContent, error)
	Create(ctx context.Context, req dto.EducationalContentRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.EducationalContentRequest) error
	Delete(ctx context.Context, id int64) error
}

// EducationalContentHandler exposes educational content CRUD.
type EducationalContentHandler struct {
	service educationalContentService
}

// NewEducationalContentHandler constructs the handler.
func NewEducationalContentHandler(svc educationalContentService) *EducationalContentHandler {
	return &EducationalContentHandler{service: svc}
}

// List godoc
// @Summary List educational content
// @Tags EducationalContent
// @Produce json
// @Success 200 {array} models.EducationalContent
// @Router /educational-content [get]
func (h *EducationalContentHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get educational content
// @Tags EducationalContent
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.EducationalContent
// @Failure 404 {object} response.ErrorBody
// @Router /educational-content/{id} [get]
func (h *EducationalContentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Educational content not found")
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Create godoc
// @Summary Create educational content
// @Tags EducationalContent
// @Accept json
// @Produce json
// @Param payload body dto.EducationalContentRequest true "Content payload"
// @Success 201 {object} dto.EducationalContentCreated
// @Router /educational-content [post]
func (h *EducationalContentHandler) Create(c *gin.Context) {
	var req dto.EducationalContentRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.EducationalContentCreated{ContentID: id, Message: "Educational content created successfully"})
}

// Update godoc
// @Summary Update educational content
// @Description Overwrite every column; omitted fields become null
// @Tags EducationalContent
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param payload body dto.EducationalContentRequest true "Content payload"
// @Success 200 {object} response.Message
// @Router /educational-content/{id} [put]
func (h *EducationalContentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Educational content not found")
	if !ok {
		return
	}
	var req dto.EducationalContentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "Educational content updated successfully")
}

// Delete godoc
// @Summary Delete educational content
// @Tags EducationalContent
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} response.Message
// @Router /educational-content/{id} [delete]
func (h *EducationalContentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Educational content not found")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, "Educational content deleted successfully")
}
