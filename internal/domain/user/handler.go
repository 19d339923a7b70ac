package user

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
	api.POST("/users", h.CreateUser)
	api.GET("/users", h.ListUsers)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.CreateUser(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating user: "+err.Error())
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) ListUsers(c echo.Context) error {
	limit := listing.LimitFromContext(c, listing.DefaultDirectoryLimit)
	items, err := h.svc.ListUsers(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching users: "+err.Error())
	}
	if items == nil {
		items = []*User{}
	}
	return c.JSON(http.StatusOK, items)
}
