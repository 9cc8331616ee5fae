package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/logistics-portal/internal/core/domain"
	"github.com/99minutos/logistics-portal/internal/core/ports"
)

// AuthzHandler exposes the authorization registries and the decision
// function for the signed-in principal.
type AuthzHandler struct {
	authz ports.Authorizer
}

// NewAuthzHandler returns an AuthzHandler answering from authz.
func NewAuthzHandler(authz ports.Authorizer) *AuthzHandler {
	return &AuthzHandler{authz: authz}
}

type meResponse struct {
	Principal   *domain.Principal   `json:"principal"`
	Permissions []domain.Permission `json:"permissions"`
}

type checkRequest struct {
	Permission string `json:"permission" validate:"required,max=128"`
}

type checkResponse struct {
	Permission domain.Permission `json:"permission"`
	Granted    bool              `json:"granted"`
}

type permissionsResponse struct {
	Domains []ports.PermissionGroup `json:"domains"`
}

type rolesResponse struct {
	Roles []ports.RoleSummary `json:"roles"`
}

// Me handles GET /v1/authz/me.
//
// @Summary      Current principal and its effective permissions
// @Tags         authz
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  meResponse
// @Failure      401  {object}  httperr.Envelope
// @Failure      403  {object}  httperr.Envelope
// @Router       /v1/authz/me [get]
func (h *AuthzHandler) Me(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		Principal:   p,
		Permissions: h.authz.EffectivePermissions(p.Roles),
	})
}

// Check handles POST /v1/authz/check. It answers whether the current
// principal holds a permission; a negative answer is a 200, not a 403.
//
// @Summary      Check a permission for the current principal
// @Tags         authz
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      checkRequest  true  "Permission to check"
// @Success      200   {object}  checkResponse
// @Failure      400   {object}  httperr.Envelope
// @Failure      401   {object}  httperr.Envelope
// @Failure      422   {object}  httperr.Envelope
// @Router       /v1/authz/check [post]
func (h *AuthzHandler) Check(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	perm := domain.ParsePermission(req.Permission)
	return c.JSON(http.StatusOK, checkResponse{
		Permission: perm,
		Granted:    h.authz.HasPermission(p.Roles, perm),
	})
}

// Permissions handles GET /v1/authz/permissions.
//
// @Summary      List permissions grouped by domain
// @Tags         authz
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  permissionsResponse
// @Failure      401  {object}  httperr.Envelope
// @Failure      403  {object}  httperr.Envelope
// @Router       /v1/authz/permissions [get]
func (h *AuthzHandler) Permissions(c echo.Context) error {
	return c.JSON(http.StatusOK, permissionsResponse{Domains: h.authz.ListPermissionsByDomain()})
}

// Roles handles GET /v1/authz/roles.
//
// @Summary      List roles with their permission counts
// @Tags         authz
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  rolesResponse
// @Failure      401  {object}  httperr.Envelope
// @Failure      403  {object}  httperr.Envelope
// @Router       /v1/authz/roles [get]
func (h *AuthzHandler) Roles(c echo.Context) error {
	return c.JSON(http.StatusOK, rolesResponse{Roles: h.authz.ListRoles()})
}

// AdminPing handles GET /v1/admin/ping, a cheap probe the admin dashboard
// uses to decide whether to render its navigation.
//
// @Summary      Admin dashboard reachability
// @Tags         admin
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  httperr.Envelope
// @Router       /v1/admin/ping [get]
func (h *AuthzHandler) AdminPing(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "role": string(p.PrimaryRole)})
}
