package profile

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/profile", h.get)
	admin.PUT("/profile", h.upsert)
}

// GET /profile
func (h *Handler) get(c *gin.Context) {
	response.OK(c, h.svc.Get(c.Request.Context()))
}

// PUT /admin/profile
func (h *Handler) upsert(c *gin.Context) {
	var dto UpsertProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Upsert(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, p)
}
