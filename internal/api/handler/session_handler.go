package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/logistics-portal/internal/api/metrics"
	"github.com/99minutos/logistics-portal/internal/core/ports"
)

// SessionHandler handles sign-out. Sign-in lives with the identity provider.
type SessionHandler struct {
	identity   ports.IdentityProvider
	revoker    ports.SessionRevoker
	cookieName string
}

// NewSessionHandler returns a SessionHandler that revokes sessions read by
// identity and clears the cookieName cookie.
func NewSessionHandler(identity ports.IdentityProvider, revoker ports.SessionRevoker, cookieName string) *SessionHandler {
	return &SessionHandler{identity: identity, revoker: revoker, cookieName: cookieName}
}

// Logout handles POST /v1/auth/logout. The token stays cryptographically
// valid until it expires, so its id is put on the revocation list.
//
// @Summary      Sign out the current session
// @Tags         auth
// @Produce      json
// @Security     SessionCookie
// @Success      204
// @Failure      401  {object}  httperr.Envelope
// @Failure      500  {object}  httperr.Envelope
// @Router       /v1/auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	claim, err := h.identity.CurrentSession(c.Request())
	if err != nil {
		return err
	}
	if claim.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session cannot be revoked")
	}

	if err := h.revoker.Revoke(c.Request().Context(), claim); err != nil {
		return err
	}
	metrics.SessionsRevokedTotal.Inc()

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}
