package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/athletex/gym-api/internal/handler"
	"github.com/athletex/gym-api/internal/middleware"
	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/service/admin"
)

type Handler struct {
	svc *admin.Service
}

func NewHandler(svc *admin.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterAdminRoutes mounts the dashboard and user management
// endpoints behind RequireAdmin.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.Stats)
	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.DELETE("/:id", h.DeleteUser)
		users.PUT("/:id/role", h.SetRole)
	}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage("user deleted"))
}

func (h *Handler) SetRole(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	var req model.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	user, err := h.svc.SetRole(c.Request.Context(), caller, id, req.Role)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(user))
}
