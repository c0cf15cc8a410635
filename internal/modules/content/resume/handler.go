package resume

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/imagehost"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/mx-space/portfolio/internal/store"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/resume", h.active)
	public.GET("/resume/download", h.download)

	g := admin.Group("/resumes")
	g.GET("", h.list)
	g.POST("", h.create)
	g.PATCH("/:id/activate", h.activate)
	g.DELETE("/:id", h.delete)
}

// GET /resume
func (h *Handler) active(c *gin.Context) {
	r, err := h.svc.Active(c.Request.Context())
	if err != nil {
		notFoundOr(c, err)
		return
	}
	response.OK(c, r)
}

// GET /resume/download
func (h *Handler) download(c *gin.Context) {
	url, err := h.svc.Download(c.Request.Context())
	if err != nil {
		notFoundOr(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// GET /admin/resumes
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// POST /admin/resumes, either multipart (field "file") or JSON.
func (h *Handler) create(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.upload(c)
		return
	}
	var dto CreateResumeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	r, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, r)
}

func (h *Handler) upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer f.Close()

	r, err := h.svc.Upload(c.Request.Context(), c.PostForm("title"), fh.Filename, f)
	if err != nil {
		if errors.Is(err, imagehost.ErrTooLarge) {
			response.PayloadTooLarge(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.Created(c, r)
}

// PATCH /admin/resumes/:id/activate
func (h *Handler) activate(c *gin.Context) {
	r, err := h.svc.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, r)
}

// DELETE /admin/resumes/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func notFoundOr(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		response.NotFoundMsg(c, "no active resume")
		return
	}
	response.Error(c, err)
}
