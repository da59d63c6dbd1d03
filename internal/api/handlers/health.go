package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store    Pinger
	settings scope.Provider
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithScopeProvider adds the scoped configuration to the readiness check. A
// run cannot resolve delays or credentials when the provider fails to load.
func WithScopeProvider(p scope.Provider) HealthOption {
	return func(h *HealthHandler) {
		h.settings = p
	}
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s Pinger, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{store: s}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ReadyResponse is the body of /readyz.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 when the storefront database is reachable and the
// scoped configuration loads, 503 otherwise.
//
// @Summary Readiness check
// @Description Returns 200 when the database and scoped configuration are usable, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx := c.Request().Context()
	resp := ReadyResponse{Status: "ready", Checks: map[string]string{}}

	if err := h.store.Ping(ctx); err != nil {
		resp.Status = "unavailable"
		resp.Checks["database"] = "unreachable"
	} else {
		resp.Checks["database"] = "ok"
	}

	if h.settings != nil {
		// Any path works: the first read loads the whole snapshot.
		if _, _, err := h.settings.Value(ctx, scope.PathAbandonmentEnabled, scope.Default()); err != nil {
			resp.Status = "unavailable"
			resp.Checks["config"] = "unreadable"
		} else {
			resp.Checks["config"] = "ok"
		}
	}

	if resp.Status != "ready" {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
