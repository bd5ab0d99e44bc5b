package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// Pinger is the minimal contract I need from a dependency to check readiness.
// I keep it local to the handler package to avoid coupling and simplify tests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checks names the dependencies readiness depends on, e.g. {"postgres": ..., "redis": ...}.
type Checks map[string]Pinger

// Ping runs every check and joins the failures.
func (c Checks) Ping(ctx context.Context) error {
	var errs []error
	for _, name := range c.names() {
		if err := c[name].Ping(ctx); err != nil {
			errs = append(errs, errors.New(name+": "+err.Error()))
		}
	}
	return errors.Join(errs...)
}

func (c Checks) names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	checks Checks
}

// NewHealthHandler accepts either a single Pinger (reported as "postgres") or a Checks set.
func NewHealthHandler(p Pinger) *HealthHandler {
	if c, ok := p.(Checks); ok {
		return &HealthHandler{checks: c}
	}
	return &HealthHandler{checks: Checks{"postgres": p}}
}

// Liveness responds OK if the process is up; it doesn't check dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness pings every dependency and reports each one's state.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	status, code := "ready", http.StatusOK
	report := make(gin.H, len(h.checks))
	for _, name := range h.checks.names() {
		if err := h.checks[name].Ping(ctx); err != nil {
			report[name] = err.Error()
			status, code = "unavailable", http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}
	c.JSON(code, gin.H{"status": status, "checks": report})
}
