package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/seat-booking/internal/booking"
	"github.com/iliyamo/seat-booking/internal/catalog"
)

// TransportHandler lists bus and train departures and opens a booking
// session for the one a client picks.
type TransportHandler struct {
	Routes   *catalog.Routes
	Sessions *booking.Manager
}

// ListBuses handles GET /v1/transport/bus?sort=&type=.
func (h *TransportHandler) ListBuses(c echo.Context) error {
	sort, err := catalog.ParseSort(c.QueryParam("sort"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	items := h.Routes.Buses(catalog.RouteQuery{Sort: sort, Type: c.QueryParam("type")})
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
}

// ListTrains handles GET /v1/transport/train?sort=&type=&class=.  class
// picks the fare used for price sorting and is echoed back.
func (h *TransportHandler) ListTrains(c echo.Context) error {
	sort, err := catalog.ParseSort(c.QueryParam("sort"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	class, err := catalog.ParseTrainClass(c.QueryParam("class"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	items := h.Routes.Trains(catalog.RouteQuery{Sort: sort, Type: c.QueryParam("type"), Class: class})
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items), "class": class})
}

// StartBus handles POST /v1/transport/bus/:id/sessions.
func (h *TransportHandler) StartBus(c echo.Context) error {
	bus, err := h.Routes.Bus(c.Param("id"))
	if err != nil {
		return routeError(c, err)
	}
	return c.JSON(http.StatusCreated, h.Sessions.Start(bus.Event()).Snapshot())
}

// StartTrain handles POST /v1/transport/train/:id/sessions?class=.
func (h *TransportHandler) StartTrain(c echo.Context) error {
	class, err := catalog.ParseTrainClass(c.QueryParam("class"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	train, err := h.Routes.Train(c.Param("id"))
	if err != nil {
		return routeError(c, err)
	}
	ev, err := train.Event(class)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, h.Sessions.Start(ev).Snapshot())
}

func routeError(c echo.Context, err error) error {
	if errors.Is(err, catalog.ErrRouteNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "route not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
}
