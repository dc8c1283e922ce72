package handler

import (
	"log/slog"
	"math"

	"cabradar/internal/delivery/http/response"
	"cabradar/internal/domain/entity"
	domainerrors "cabradar/internal/domain/errors"
	"cabradar/internal/errors"
	"cabradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query string `json:"query"`
}

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the vehicle list and place search.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ListCars handles GET /cars?type=&lat=&lng=&radius=.
func (h *LocationHandler) ListCars(c echo.Context) error {
	filter, err := parseCarFilter(c)
	if err != nil {
		return err
	}

	cars, err := h.locationUC.ListCars(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, cars)
}

// Search handles POST /search.
func (h *LocationHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage(err.Error())
	}

	places, err := h.locationUC.SearchPlaces(c.Request().Context(), req.Query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, places)
}

// parseCarFilter reads the optional type filter and the all-or-nothing
// lat/lng/radius proximity filter.
func parseCarFilter(c echo.Context) (usecase.CarFilter, error) {
	filter := usecase.CarFilter{Type: entity.CarType(c.QueryParam("type"))}

	if c.QueryParam("lat") == "" && c.QueryParam("lng") == "" && c.QueryParam("radius") == "" {
		return filter, nil
	}

	var lat, lng, radius float64
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		MustFloat64("radius", &radius).
		BindError()
	if err != nil {
		return filter, domainerrors.ErrInvalidQuery.WrapMessage(err.Error())
	}

	if math.Abs(lat) > 90 || math.Abs(lng) > 180 || radius < 0 || math.IsNaN(lat+lng+radius) {
		return filter, domainerrors.ErrInvalidQuery.WrapMessage("coordinates or radius out of range")
	}

	filter.Near = &orb.Point{lng, lat}
	filter.RadiusMeters = radius

	return filter, nil
}
