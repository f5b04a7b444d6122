package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/workout-tracker/internal/session"
)

const (
	// ContextKeySession is the key for the resolved session in gin context
	ContextKeySession = "session"
	// ContextKeyUserID is the key for user ID in gin context
	ContextKeyUserID = "user_id"
	// ContextKeyUsername is the key for username in gin context
	ContextKeyUsername = "username"
)

// SessionMiddleware resolves the session cookie on every request and stashes
// the session in the gin context. An absent, invalid or expired cookie leaves
// the request anonymous; protected routes are gated by RequireLogin.
func SessionMiddleware(manager *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if sess, err := manager.Resolve(c.Request.Context(), token); err == nil {
				c.Set(ContextKeySession, sess)
				c.Set(ContextKeyUserID, sess.UserID)
				c.Set(ContextKeyUsername, sess.Username)
			}
		}
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login form, preserving the
// requested path for a post-login bounce-back.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession gets the resolved session from the gin context, or nil for
// anonymous requests.
func CurrentSession(c *gin.Context) *session.Session {
	v, exists := c.Get(ContextKeySession)
	if !exists {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// GetUserID gets the user ID from the gin context
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0
	}
	return userID.(uint)
}

// GetUsername gets the username from the gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get(ContextKeyUsername)
	if !exists {
		return ""
	}
	return username.(string)
}
