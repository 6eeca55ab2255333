package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/athletex/gym-api/internal/handler"
	"github.com/athletex/gym-api/internal/middleware"
	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/service/booking"
)

type Handler struct {
	svc *booking.Service
}

func NewHandler(svc *booking.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterProtectedRoutes mounts the member endpoints behind
// Authenticate. The my-bookings alias is kept for the older client.
// Delete stays here rather than under /admin because the legacy client
// calls it at this path; the service enforces the admin check.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("/my", h.ListMine)
		bookings.GET("/my-bookings", h.ListMine)
		bookings.PATCH("/:id/cancel", h.Cancel)
		bookings.DELETE("/:id", h.Delete)
	}
}

// RegisterAdminRoutes mounts the endpoints behind RequireAdmin
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", h.ListAll)
		bookings.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) Create(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	b, err := h.svc.Create(c.Request.Context(), caller, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(b))
}

func (h *Handler) ListMine(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	bookings, err := h.svc.ListMine(c.Request.Context(), caller.UserID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bookings))
}

func (h *Handler) Cancel(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	b, err := h.svc.Cancel(c.Request.Context(), caller, id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), caller, id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage("booking deleted"))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	b, err := h.svc.UpdateStatus(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

func (h *Handler) ListAll(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	bookings, err := h.svc.ListAll(c.Request.Context(), caller)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bookings))
}
