package message

import (
	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/pagination"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the contact form behind limit, which may be nil.
func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup, limit gin.HandlerFunc) {
	if limit != nil {
		public.POST("/messages", limit, h.create)
	} else {
		public.POST("/messages", h.create)
	}

	g := admin.Group("/messages")
	g.GET("", h.list)
	g.GET("/unread-count", h.unreadCount)
	g.PATCH("/:id", h.mark)
	g.DELETE("/:id", h.delete)
}

// POST /messages
func (h *Handler) create(c *gin.Context) {
	var dto CreateMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, m)
}

// GET /admin/messages?page=&size=&isRead=
func (h *Handler) list(c *gin.Context) {
	var filter ListQuery
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	items, pag, err := h.svc.List(c.Request.Context(), pagination.FromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// GET /admin/messages/unread-count
func (h *Handler) unreadCount(c *gin.Context) {
	n, err := h.svc.UnreadCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"count": n})
}

// PATCH /admin/messages/:id
func (h *Handler) mark(c *gin.Context) {
	var dto MarkMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Mark(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, m)
}

// DELETE /admin/messages/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
