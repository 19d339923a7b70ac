package report

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
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
	api.POST("/reports", h.CreateReport)
	api.GET("/reports", h.ListReports)
	api.GET("/reports/:id", h.GetReport)
}

func (h *Handler) CreateReport(c echo.Context) error {
	var req CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r, err := h.svc.CreateReport(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating report: "+err.Error())
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) ListReports(c echo.Context) error {
	limit := listing.LimitFromContext(c, listing.DefaultFeedLimit)
	items, err := h.svc.ListReports(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching reports: "+err.Error())
	}
	if items == nil {
		items = []*HealthReport{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Report not found")
	}
	r, err := h.svc.GetReport(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Report not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching report: "+err.Error())
	}
	return c.JSON(http.StatusOK, r)
}
