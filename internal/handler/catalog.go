// Package handler exposes the HTTP handlers of the booking API.  This file
// serves the public event catalog; no authentication is required.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/seat-booking/internal/catalog"
)

// CatalogHandler serves read-only event listings.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

// ListEvents handles GET /v1/events?type=&limit=.  type is one of cinema,
// train, bus, general or all; limit keeps the first n results.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	items := h.Catalog.List(c.QueryParam("type"))
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return badRequest(c, "invalid limit")
		}
		if n < len(items) {
			items = items[:n]
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
}

// GetEvent handles GET /v1/events/:id.
func (h *CatalogHandler) GetEvent(c echo.Context) error {
	ev, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, ev)
}

// FeaturedEvents handles GET /v1/events/featured, the home page strip of
// six events.
func (h *CatalogHandler) FeaturedEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Featured(6)})
}
