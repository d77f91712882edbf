package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/home-readiness/backend/internal/auth"
	"example.com/home-readiness/backend/internal/repository"
)

type AuthHandler struct {
	Coaches *repository.CoachRepository
	Tokens  *auth.TokenManager
}

// NewAuthHandler создает обработчик входа коуча.
func NewAuthHandler(coaches *repository.CoachRepository, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{Coaches: coaches, Tokens: tokens}
}

type CoachSignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CoachProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type CoachSignInResponse struct {
	Success   bool         `json:"success"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Coach     CoachProfile `json:"coach"`
}

// SignIn проверяет учетные данные коуча и выдает JWT токен.
func (h *AuthHandler) SignIn(c echo.Context) error {
	if h.Coaches == nil {
		return serviceUnavailable(c, "coach sign-in is not available")
	}

	var req CoachSignInRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	coachAccount, err := h.Coaches.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	if err := auth.ComparePassword(coachAccount.PasswordHash, req.Password); err != nil {
		return unauthorized(c)
	}

	token, expiresAt, err := h.Tokens.NewAccessToken(coachAccount.ID, coachAccount.Name)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, CoachSignInResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
		Coach: CoachProfile{
			ID:    coachAccount.ID.String(),
			Email: coachAccount.Email,
			Name:  coachAccount.Name,
		},
	})
}
