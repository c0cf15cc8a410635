// Package upload exposes the image upload boundary to the admin UI. Callers
// store the returned URL on whichever record the image belongs to.
package upload

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/imagehost"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	up  *imagehost.Uploader
	log *zap.Logger
}

func NewHandler(up *imagehost.Uploader, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{up: up, log: log}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/upload", h.image)
}

// POST /admin/upload (multipart field "image")
func (h *Handler) image(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer f.Close()

	img, err := h.up.UploadImage(c.Request.Context(), fh.Filename, f)
	if err != nil {
		if errors.Is(err, imagehost.ErrTooLarge) {
			response.PayloadTooLarge(c, err.Error())
			return
		}
		h.log.Error("image upload failed", zap.String("file", fh.Filename), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Created(c, img)
}
