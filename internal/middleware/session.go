package middleware

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/session"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/shared/response"
)

const sessionContextKey = "ld_session_record"

// LoadSession resolves the session cookie, if any, and stashes the record
// in both the gin context and the request context (token, role, employee
// id) for downstream handlers and the upstream client. It never rejects:
// gating is the view gate's and RequireSession's job.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(session.CookieName)
		if err != nil || sid == "" {
			c.Next()
			return
		}

		sess, err := store.Current(c.Request.Context(), sid)
		if err != nil {
			c.Next()
			return
		}

		c.Set(sessionContextKey, sess)

		ctx := c.Request.Context()
		ctx = contextutil.WithAccessToken(ctx, sess.Token)
		ctx = contextutil.WithRole(ctx, sess.Role)
		ctx = contextutil.WithEmployeeID(ctx, sess.EmployeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionFromGin returns the session record LoadSession stashed, if any.
func SessionFromGin(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// RequireSession guards API routes: without a session the request stops
// with a 401 envelope (API calls get errors, not redirects).
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFromGin(c); !ok {
			response.HTTPError(c, apperror.ToHTTP(apperror.ErrUnauthorized))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole additionally limits a route to the given roles. It implies
// RequireSession.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromGin(c)
		if !ok {
			response.HTTPError(c, apperror.ToHTTP(apperror.ErrUnauthorized))
			c.Abort()
			return
		}
		for _, role := range roles {
			if sess.Role == role {
				c.Next()
				return
			}
		}
		response.HTTPError(c, apperror.ToHTTP(apperror.ErrForbidden))
		c.Abort()
	}
}
