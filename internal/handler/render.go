package handler

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/workout-tracker/internal/middleware"
)

// Flash is a one-shot message rendered by the next page view. Kind
// discriminates styling/semantics so the views never have to sniff the text.
type Flash struct {
	Kind    string // "error" or "info"
	Message string
}

func errorFlash(message string) *Flash {
	return &Flash{Kind: "error", Message: message}
}

func infoFlash(message string) *Flash {
	return &Flash{Kind: "info", Message: message}
}

// flashCookie carries a flash across a redirect. In-place re-renders pass the
// flash directly and never touch the cookie.
const flashCookie = "flash"

func setFlash(c *gin.Context, f *Flash) {
	value := base64.URLEncoding.EncodeToString([]byte(f.Kind + "|" + f.Message))
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

func popFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}

// render emits an HTML view. The current user is taken from this request's
// context and passed into the template explicitly; no process-wide state
// carries identity between requests. A pending flash cookie is consumed
// unless the caller supplied a flash of its own.
func render(c *gin.Context, status int, view string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = middleware.CurrentSession(c)
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c)
	}
	c.HTML(status, view, data)
}
