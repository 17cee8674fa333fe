package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/session"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"
	"leavedesk/internal/viewgate"
)

type Handler struct {
	service Service
	gate    *viewgate.Gate
	logger  *zap.Logger
}

func NewHandler(service Service, gate *viewgate.Gate, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, gate: gate, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.HTTPError(c, httpErr)
}

func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	sid, resp, err := h.service.Login(c.Request.Context(), form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp.RedirectTo = h.gate.DefaultView(resp.Role)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, sid, 0, "/", "", false, true)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	sid, _ := c.Cookie(session.CookieName)
	if err := h.service.Logout(c.Request.Context(), sid); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var form UpdateProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
