// Package listing parses the simple list-limit query parameter shared by
// every collection endpoint. Listings are capped, newest-first, and have no
// offset cursor.
package listing

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	// DefaultFeedLimit applies to high-churn feeds (reports, water readings).
	DefaultFeedLimit = 50
	// DefaultDirectoryLimit applies to directory-style listings
	// (doctors, users, medical stock).
	DefaultDirectoryLimit = 1000
	// MaxLimit bounds any client-supplied limit.
	MaxLimit = 1000
)

// LimitFromContext reads the "limit" query parameter, falling back to def
// when it is absent or not a positive integer. The result never exceeds
// MaxLimit.
func LimitFromContext(c echo.Context, def int) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = def
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit
}
