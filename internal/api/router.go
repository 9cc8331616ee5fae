package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/logistics-portal/docs"
	"github.com/99minutos/logistics-portal/internal/api/handler"
	"github.com/99minutos/logistics-portal/internal/api/middleware"
	"github.com/99minutos/logistics-portal/internal/core/domain"
	"github.com/99minutos/logistics-portal/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Sessions      ports.SessionValidator
	Authz         ports.Authorizer
	Identity      ports.IdentityProvider
	Revoker       ports.SessionRevoker
	Checks        map[string]handler.DependencyCheck
	SessionCookie string
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddleware("portal"))

	guard := middleware.NewGuard(deps.Sessions, deps.Authz, deps.Log)
	authzHandler := handler.NewAuthzHandler(deps.Authz)
	sessionHandler := handler.NewSessionHandler(deps.Identity, deps.Revoker, deps.SessionCookie)
	healthHandler := handler.NewHealthHandler(deps.Checks, deps.Log)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Session ---
	v1.POST("/auth/logout", sessionHandler.Logout)

	// --- Authorization introspection ---
	authz := v1.Group("/authz")
	authz.GET("/me", authzHandler.Me, guard.RequireSession())
	authz.POST("/check", authzHandler.Check, guard.RequireSession())
	authz.GET("/permissions", authzHandler.Permissions, guard.RequirePermission(domain.PermUserManagement))
	authz.GET("/roles", authzHandler.Roles, guard.RequirePermission(domain.PermUserManagement))

	// --- Admin dashboard (legacy allow-list) ---
	v1.GET("/admin/ping", authzHandler.AdminPing, guard.RequireRoles(domain.RoleAdmin, domain.RoleEditor))

	return e
}

// requestLogger feeds echo's request log into zerolog. Query strings and
// headers are left out so session tokens never reach the log.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
