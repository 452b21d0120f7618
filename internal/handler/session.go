package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/seat-booking/internal/booking"
	"github.com/iliyamo/seat-booking/internal/catalog"
	"github.com/iliyamo/seat-booking/internal/model"
	"github.com/iliyamo/seat-booking/internal/seatmap"
)

// SessionHandler drives booking sessions: seat map, selection, checkout.
// Everything except checkout works anonymously; the session id is the
// only handle a client needs.
type SessionHandler struct {
	Catalog  *catalog.Catalog
	Sessions *booking.Manager
}

type checkoutReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// Start handles POST /v1/events/:id/sessions.  A fresh seat inventory is
// generated for every session.
func (h *SessionHandler) Start(c echo.Context) error {
	ev, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	s := h.Sessions.Start(ev)
	return c.JSON(http.StatusCreated, s.Snapshot())
}

// Get handles GET /v1/sessions/:id.
func (h *SessionHandler) Get(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, s.Snapshot())
}

// Layout handles GET /v1/sessions/:id/layout?category=standard|premium.
func (h *SessionHandler) Layout(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	cat := model.SeatCategory(c.QueryParam("category"))
	switch cat {
	case "", model.CategoryStandard, model.CategoryPremium:
	case "all":
		cat = ""
	default:
		return badRequest(c, "invalid category")
	}
	return c.JSON(http.StatusOK, s.Layout(cat))
}

// ToggleSeat handles POST /v1/sessions/:id/seats/:seat_id/toggle.  Booked
// seats are left alone and reported with changed=false.
func (h *SessionHandler) ToggleSeat(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	seat, changed, err := s.ToggleSeat(c.Param("seat_id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"seat":    seat,
		"changed": changed,
		"summary": s.Summary(),
	})
}

// ClearSelection handles DELETE /v1/sessions/:id/selection.
func (h *SessionHandler) ClearSelection(c echo.Context) error {
	return h.step(c, (*booking.Session).ClearSelection)
}

// Summary handles GET /v1/sessions/:id/summary.
func (h *SessionHandler) Summary(c echo.Context) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, s.Summary())
}

// Proceed handles POST /v1/sessions/:id/proceed.
func (h *SessionHandler) Proceed(c echo.Context) error {
	return h.step(c, (*booking.Session).Proceed)
}

// Back handles POST /v1/sessions/:id/back.
func (h *SessionHandler) Back(c echo.Context) error {
	return h.step(c, (*booking.Session).BackToSeats)
}

func (h *SessionHandler) step(c echo.Context, fn func(*booking.Session) error) error {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		return sessionError(c, err)
	}
	if err := fn(s); err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, s.Snapshot())
}

// Checkout handles POST /v1/sessions/:id/checkout (JWT).  The booking is
// recorded under the authenticated user.
func (h *SessionHandler) Checkout(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	var req checkoutReq
	if msg, ok := bindValid(c, &req); !ok {
		return badRequest(c, msg)
	}
	b, err := h.Sessions.Checkout(c.Request().Context(), c.Param("id"), userID, booking.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Abandon handles DELETE /v1/sessions/:id.
func (h *SessionHandler) Abandon(c echo.Context) error {
	if err := h.Sessions.Abandon(c.Param("id")); err != nil {
		return sessionError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func sessionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	case errors.Is(err, seatmap.ErrUnknownSeat):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	case errors.Is(err, booking.ErrWrongStep):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrEmptySelection), errors.Is(err, booking.ErrCustomerInfo):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusRequestTimeout, echo.Map{"error": "checkout cancelled"})
	}
	c.Logger().Errorf("session: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
}
