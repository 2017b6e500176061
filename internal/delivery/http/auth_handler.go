package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tradejournal/internal/delivery/http/dto"
	"tradejournal/internal/domain"
	"tradejournal/internal/middleware"
)

// AuthHandler handles registration, login and the current-user lookup
type AuthHandler struct {
	auth      domain.AuthService
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth domain.AuthService, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.auth.Register(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	token, err := middleware.GenerateToken(user.ID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to generate token", err)
	}

	h.setTokenCookie(c, token)

	return CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.FromUser(user),
	})
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return DomainErrorResponse(c, err)
	}

	token, err := middleware.GenerateToken(user.ID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to generate token", err)
	}

	h.setTokenCookie(c, token)

	return SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.FromUser(user),
	})
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := middleware.GetUser(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	return SuccessResponse(c, dto.FromUser(user))
}

func (h *AuthHandler) setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.tokenTTL / time.Second),
	})
}
