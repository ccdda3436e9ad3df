package handlers

import (
	"errors"
	"net/http"
	"net/mail"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

const rememberMeMaxAge = 24 * 60 * 60 // seconds

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// validateCredentials returns field-level messages, empty when valid.
// name is skipped when checkName is false (login has no name field).
func validateCredentials(name, email, password string, checkName bool) map[string]string {
	fields := make(map[string]string)
	if checkName && name == "" {
		fields["name"] = "Missing name"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "Invalid email format"
	}
	if len(password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}
	return fields
}

// Register creates a user. Unlike login, this endpoint confirms whether an
// email is already taken; preserved as observed behavior.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if fields := validateCredentials(req.Name, req.Email, req.Password, true); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fields})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.Users.GetByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		serverError(c, "register lookup failed", err)
		return
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		serverError(c, "password hash failed", err)
		return
	}

	user := &domain.User{Email: req.Email, Name: req.Name, PasswordHash: hash}
	if err := h.Users.Create(ctx, user); err != nil {
		// two registrations can race past the lookup; same answer either way
		if errors.Is(err, domain.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		serverError(c, "register insert failed", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login verifies the password and sets the credential cookie. An unknown
// email gets the same status as a wrong password so this endpoint does not
// confirm which emails exist.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if fields := validateCredentials("", req.Email, req.Password, false); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fields})
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		serverError(c, "login lookup failed", err)
		return
	}

	if !service.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		serverError(c, "token generation failed", err)
		return
	}

	maxAge := 0 // session cookie
	if req.RememberMe {
		maxAge = rememberMeMaxAge
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", h.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout clears the credential cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AuthCheck confirms the credential is valid; the middleware did the work.
func (h *Handler) AuthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Authenticated"})
}
