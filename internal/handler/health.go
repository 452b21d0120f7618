package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// SessionCounter reports the number of live booking sessions.
type SessionCounter interface {
	Len() int
}

// HealthHandler reports liveness plus the configured ledger backend.
type HealthHandler struct {
	LedgerStore string
	Sessions    SessionCounter
}

// Health is used by load balancers and monitoring to verify the service is
// running.  It always returns 200.
func (h *HealthHandler) Health(c echo.Context) error {
	body := echo.Map{"status": "ok", "ledger": h.LedgerStore}
	if h.Sessions != nil {
		body["sessions"] = h.Sessions.Len()
	}
	return c.JSON(http.StatusOK, body)
}
