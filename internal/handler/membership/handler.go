package membership

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/athletex/gym-api/internal/handler"
	"github.com/athletex/gym-api/internal/middleware"
	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/service/membership"
)

type Handler struct {
	svc *membership.Service
}

func NewHandler(svc *membership.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public endpoints
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/memberships/plans", h.Plans)
}

// RegisterProtectedRoutes mounts the endpoints behind Authenticate.
// Subscribe is a route alias kept for the older client.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	memberships := r.Group("/memberships")
	{
		memberships.POST("/purchase", h.Purchase)
		memberships.POST("/subscribe", h.Purchase)
		memberships.GET("/my", h.My)
		memberships.GET("/status", h.Status)
	}
}

// RegisterAdminRoutes mounts the full listing on the authenticated
// group, gated per-route by adminOnly
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	r.GET("/memberships", adminOnly, h.ListAll)
}

func (h *Handler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Catalog()))
}

func (h *Handler) Purchase(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	var req model.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	m, extended, err := h.svc.Purchase(c.Request.Context(), caller.UserID, req.PlanCode())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	status := http.StatusCreated
	message := "membership activated"
	if extended {
		status = http.StatusOK
		message = "membership extended"
	}
	c.JSON(status, handler.Response{
		Status:  "success",
		Message: message,
		Data:    m,
	})
}

func (h *Handler) My(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	m, err := h.svc.Current(c.Request.Context(), caller.UserID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(m))
}

func (h *Handler) Status(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	status, err := h.svc.Status(c.Request.Context(), caller.UserID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(status))
}

func (h *Handler) ListAll(c *gin.Context) {
	memberships, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(memberships))
}
