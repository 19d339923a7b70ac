package water

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gramhealth/gramhealth/pkg/listing"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/water-quality", h.CreateReading)
	api.GET("/water-quality", h.ListReadings)
}

func (h *Handler) CreateReading(c echo.Context) error {
	var req CreateReadingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	q, err := h.svc.CreateReading(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating water quality data: "+err.Error())
	}
	return c.JSON(http.StatusOK, q)
}

func (h *Handler) ListReadings(c echo.Context) error {
	limit := listing.LimitFromContext(c, listing.DefaultFeedLimit)
	items, err := h.svc.ListReadings(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching water quality data: "+err.Error())
	}
	if items == nil {
		items = []*QualityData{}
	}
	return c.JSON(http.StatusOK, items)
}
