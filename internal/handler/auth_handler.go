package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/workout-tracker/internal/middleware"
	"github.com/workout-tracker/internal/service"
	"github.com/workout-tracker/internal/session"
)

// AuthHandler handles login, logout and registration
type AuthHandler struct {
	authService  *service.AuthService
	sessions     *session.Manager
	cookieName   string
	cookieMaxAge int
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, sessions *session.Manager, cookieName string, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// LoginForm shows the login form
// GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if middleware.CurrentSession(c) != nil {
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
	})
}

// Login checks credentials and starts a session
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			render(c, http.StatusOK, "login.html", gin.H{
				"Flash": errorFlash("Invalid username or password"),
				"Next":  c.Query("next"),
			})
			return
		}
		middleware.LogError("login failed for %q: %v", username, err)
		render(c, http.StatusOK, "login.html", gin.H{
			"Flash": errorFlash("An error occurred while logging in"),
			"Next":  c.Query("next"),
		})
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), session.Session{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		middleware.LogError("create session for %q: %v", username, err)
		render(c, http.StatusOK, "login.html", gin.H{
			"Flash": errorFlash("An error occurred while logging in"),
			"Next":  c.Query("next"),
		})
		return
	}

	c.SetCookie(h.cookieName, token, h.cookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
}

// Logout destroys the session unconditionally
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			middleware.LogError("destroy session: %v", err)
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

// RegisterForm shows the registration form
// GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	if middleware.CurrentSession(c) != nil {
		c.Redirect(http.StatusSeeOther, "/workouts")
		return
	}
	render(c, http.StatusOK, "register.html", nil)
}

// Register creates a new account
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	if username == "" || password == "" || confirm == "" {
		render(c, http.StatusOK, "register.html", gin.H{
			"Flash": errorFlash("All fields are required."),
		})
		return
	}

	if password != confirm {
		render(c, http.StatusOK, "register.html", gin.H{
			"Flash": errorFlash("Passwords do not match."),
		})
		return
	}

	if _, err := h.authService.Register(username, password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			render(c, http.StatusOK, "register.html", gin.H{
				"Flash": errorFlash("Username already taken."),
			})
			return
		}
		middleware.LogError("register %q: %v", username, err)
		render(c, http.StatusOK, "register.html", gin.H{
			"Flash": errorFlash("Error creating account."),
		})
		return
	}

	setFlash(c, infoFlash("Account created! Please log in."))
	c.Redirect(http.StatusSeeOther, "/login")
}

// safeNext keeps post-login redirects on-site: only local absolute paths are
// honored, anything else falls back to the workout list.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/workouts"
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
}
