package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/seat-booking/internal/ledger"
	"github.com/iliyamo/seat-booking/internal/model"
)

// BookingHandler serves the "my bookings" pages.  All routes require a
// JWT; the ledger is keyed by the authenticated user.
type BookingHandler struct {
	Ledger *ledger.Ledger
}

// ListMine handles GET /v1/my-bookings?status=upcoming|past|all.  "past"
// includes cancelled bookings.
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx := c.Request().Context()
	var items []model.Booking
	switch c.QueryParam("status") {
	case "", "all":
		items, err = h.Ledger.All(ctx, userID)
	case "upcoming":
		items, err = h.Ledger.Upcoming(ctx, userID)
	case "past":
		items, err = h.Ledger.Past(ctx, userID)
	default:
		return badRequest(c, "invalid status")
	}
	if err != nil {
		return bookingError(c, err)
	}
	if items == nil {
		items = []model.Booking{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	return h.one(c, h.Ledger.Get)
}

// Cancel handles POST /v1/bookings/:id/cancel.  Only upcoming bookings can
// be cancelled.
func (h *BookingHandler) Cancel(c echo.Context) error {
	return h.one(c, h.Ledger.Cancel)
}

// MarkSeen handles POST /v1/bookings/:id/seen and clears the "new" badge.
func (h *BookingHandler) MarkSeen(c echo.Context) error {
	return h.one(c, h.Ledger.ClearNew)
}

func (h *BookingHandler) one(c echo.Context, op func(context.Context, string, string) (model.Booking, error)) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	b, err := op(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ledger.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case errors.Is(err, ledger.ErrNotCancellable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "only upcoming bookings can be cancelled"})
	}
	c.Logger().Errorf("ledger: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "ledger error"})
}
