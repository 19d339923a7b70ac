package stock

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
	api.POST("/medical-stock", h.CreateStock)
	api.GET("/medical-stock", h.ListStocks)
}

func (h *Handler) CreateStock(c echo.Context) error {
	var req CreateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.CreateStock(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating stock: "+err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) ListStocks(c echo.Context) error {
	limit := listing.LimitFromContext(c, listing.DefaultDirectoryLimit)
	items, err := h.svc.ListStocks(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching stock: "+err.Error())
	}
	if items == nil {
		items = []*MedicalStock{}
	}
	return c.JSON(http.StatusOK, items)
}
