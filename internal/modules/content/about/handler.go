package about

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
	public.GET("/about", h.get)
	admin.PUT("/about", h.upsert)
}

// GET /about
func (h *Handler) get(c *gin.Context) {
	response.OK(c, h.svc.Get(c.Request.Context()))
}

// PUT /admin/about
func (h *Handler) upsert(c *gin.Context) {
	var dto UpsertAboutDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Upsert(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, a)
}
