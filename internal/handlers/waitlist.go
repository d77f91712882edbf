package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/home-readiness/backend/internal/cache"
	"example.com/home-readiness/backend/internal/models"
	"example.com/home-readiness/backend/internal/repository"
	"example.com/home-readiness/backend/internal/sink"
)

const waitlistCountKey = "waitlist:count"

type WaitlistHandler struct {
	Waitlist *repository.WaitlistRepository
	Cache    cache.Cache
	CountTTL time.Duration
	Sink     *sink.Sink
}

// NewWaitlistHandler создает обработчик листа ожидания.
func NewWaitlistHandler(waitlist *repository.WaitlistRepository, countCache cache.Cache, countTTL time.Duration, dataSink *sink.Sink) *WaitlistHandler {
	return &WaitlistHandler{
		Waitlist: waitlist,
		Cache:    countCache,
		CountTTL: countTTL,
		Sink:     dataSink,
	}
}

type JoinWaitlistRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Score  *int   `json:"score"`
	Source string `json:"source"`
}

type JoinWaitlistResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    models.WaitlistEntry `json:"data"`
}

type WaitlistCountResponse struct {
	Count int `json:"count"`
}

// Join добавляет email в лист ожидания.
func (h *WaitlistHandler) Join(c echo.Context) error {
	if h.Waitlist == nil {
		return serviceUnavailable(c, "waitlist is not available")
	}

	var req JoinWaitlistRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "valid email is required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = "web"
	}

	entry, err := h.Waitlist.Create(c.Request().Context(), email, req.Score, source)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "email already registered on waitlist")
		}
		return serverError(c)
	}

	properties, _ := json.Marshal(map[string]interface{}{
		"email":  email,
		"score":  req.Score,
		"source": source,
	})
	h.Sink.EnqueueEvent(models.EventWaitlistJoined, properties)

	return c.JSON(http.StatusOK, JoinWaitlistResponse{
		Success: true,
		Message: "Successfully joined the waitlist!",
		Data:    entry,
	})
}

// Count возвращает размер листа ожидания с коротким кэшированием.
func (h *WaitlistHandler) Count(c echo.Context) error {
	if h.Waitlist == nil {
		return serviceUnavailable(c, "waitlist is not available")
	}

	ctx := c.Request().Context()

	if cached, ok := h.Cache.Get(ctx, waitlistCountKey); ok {
		if count, err := strconv.Atoi(cached); err == nil {
			return c.JSON(http.StatusOK, WaitlistCountResponse{Count: count})
		}
	}

	count, err := h.Waitlist.Count(ctx)
	if err != nil {
		return serverError(c)
	}

	h.Cache.Set(ctx, waitlistCountKey, strconv.Itoa(count), h.CountTTL)

	return c.JSON(http.StatusOK, WaitlistCountResponse{Count: count})
}
