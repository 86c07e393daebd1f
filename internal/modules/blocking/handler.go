package blocking

import (
	"net/http"
	"strconv"

	"bookingservice/internal/pkg/response"
	"bookingservice/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/blockings/:id", h.GetBlocking)
	rg.GET("/blockings", h.ListBlockings)
	rg.POST("/blockings", h.CreateBlocking)
	rg.PUT("/blockings/:id", h.UpdateBlocking)
	rg.DELETE("/blockings/:id", h.DeleteBlocking)
}

func (h *Handler) GetBlocking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toResponse(b))
}

func (h *Handler) ListBlockings(c *gin.Context) {
	bs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toResponseList(bs))
}

func (h *Handler) CreateBlocking(c *gin.Context) {
	var req BlockingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, toResponse(b))
}

func (h *Handler) UpdateBlocking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req BlockingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, validator.Message(err))
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toResponse(b))
}

func (h *Handler) DeleteBlocking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Id must be a number")
		return 0, false
	}
	return id, true
}
