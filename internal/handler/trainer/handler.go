package trainer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/athletex/gym-api/internal/handler"
	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/service/trainer"
)

type Handler struct {
	svc *trainer.Service
}

func NewHandler(svc *trainer.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public catalog endpoint
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/trainers", h.List)
}

// RegisterAdminRoutes mounts trainer management on the authenticated
// group, gated per-route by adminOnly. The path mirrors the public
// catalog so clients create and list at the same place.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	r.POST("/trainers", adminOnly, h.Create)
}

func (h *Handler) List(c *gin.Context) {
	trainers, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(trainers))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	t, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(t))
}
