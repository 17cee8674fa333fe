package viewgate

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/middleware"
)

// Middleware guards view routes. No session redirects to the login view
// with the requested location preserved; a known role on a view outside
// its allowed set is sent to its own default view instead of a 403 page.
func Middleware(gate *Gate) gin.HandlerFunc {
	logger := zap.L().Named("viewgate")
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromGin(c)
		if !ok {
			target := LoginView + "?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}

		path := c.Request.URL.Path
		if !gate.Allowed(sess.Role, path) {
			logger.Debug("view not allowed for role, redirecting",
				zap.String("role", sess.Role),
				zap.String("path", path),
			)
			c.Redirect(http.StatusSeeOther, gate.DefaultView(sess.Role))
			c.Abort()
			return
		}

		c.Next()
	}
}
