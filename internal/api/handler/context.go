package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/logistics-portal/internal/api/middleware"
	"github.com/99minutos/logistics-portal/internal/core/domain"
)

// ctxPrincipal returns the principal the guard stored for this request. A
// missing principal means the route was registered without a guard; reject
// with 401 rather than run business logic anonymously.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
