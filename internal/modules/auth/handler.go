package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/middleware"
	"github.com/mx-space/portfolio/internal/pkg/jwt"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/mx-space/portfolio/internal/pkg/validate"
)

const defaultTokenTTL = 24 * time.Hour

type Handler struct {
	svc    *Service
	signer *jwt.Signer
	ttl    time.Duration
}

func NewHandler(svc *Service, signer *jwt.Signer, ttl time.Duration) *Handler {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Handler{svc: svc, signer: signer, ttl: ttl}
}

// RegisterRoutes mounts /auth on api and the rotation endpoint on admin.
// limit guards login and may be nil.
func (h *Handler) RegisterRoutes(api, admin *gin.RouterGroup, limit gin.HandlerFunc) {
	g := api.Group("/auth")
	if limit != nil {
		g.POST("/login", limit, h.login)
	} else {
		g.POST("/login", h.login)
	}
	g.POST("/logout", h.logout)
	g.GET("/check", middleware.OptionalAuth(h.signer), h.check)

	admin.PUT("/credentials", h.rotate)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validate.Struct(&dto); err != nil {
		response.Error(c, err)
		return
	}
	email, err := h.svc.Verify(c.Request.Context(), dto.Email, dto.Password)
	if err != nil {
		response.UnauthorizedMsg(c, err.Error())
		return
	}
	token, err := h.signer.Sign(email, h.ttl)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.setCookie(c, token, int(h.ttl.Seconds()))
	response.OK(c, loginResponse{Token: token, Email: email})
}

// POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	response.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/check
func (h *Handler) check(c *gin.Context) {
	response.OK(c, gin.H{
		"authenticated": middleware.IsAuthenticated(c),
		"email":         middleware.CurrentEmail(c),
	})
}

// PUT /admin/credentials
func (h *Handler) rotate(c *gin.Context) {
	var dto RotateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	rot, err := h.svc.Rotate(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrCurrentPasswordMismatch) {
			response.Invalid(c, &validate.Error{Field: "currentPassword", Rule: "current_password"})
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"email": rot.Email, "state": rot.State.String()})
}

func (h *Handler) setCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", c.Request.TLS != nil, true)
}
