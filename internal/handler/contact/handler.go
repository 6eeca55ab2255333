package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/athletex/gym-api/internal/handler"
	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/service/contact"
)

type Handler struct {
	svc *contact.Service
}

func NewHandler(svc *contact.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public submission endpoint
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Submit)
}

// RegisterAdminRoutes mounts the inbox management endpoints on the
// authenticated group, gated per-route by adminOnly. They share the
// /contact prefix with the public submission endpoint.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	contact := r.Group("/contact", adminOnly)
	{
		contact.GET("/all", h.List)
		contact.PATCH("/:id/read", h.MarkRead)
		contact.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req model.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	msg, err := h.svc.Submit(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.Response{
		Status:  "success",
		Message: "message received",
		Data:    msg,
	})
}

func (h *Handler) List(c *gin.Context) {
	msgs, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(msgs))
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid message ID"))
		return
	}

	if err := h.svc.MarkRead(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage("message marked as read"))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid message ID"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage("message deleted"))
}
