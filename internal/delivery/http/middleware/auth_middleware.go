package middleware

import (
	"strings"

	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/delivery/http/response"
	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
}

// AuthMiddleware resolves the actor behind the bearer token and gates routes by actor kind.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessions: params.Sessions}
}

// Resolve attaches the per-request AppState and actor. Requests without a
// bearer token continue as guest; a bad token also resolves to guest.
func (m *AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := entity.NewAppState()
		actor := entity.GuestActor()

		if token := BearerToken(c); token != "" {
			actor = m.sessions.ResolveOnStart(c.Request().Context(), state, token)
		} else {
			state.Clear()
		}

		deliverycontext.SetAppState(c, state)
		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// RequireActor rejects guests with 401 and other actor kinds with 403.
// It must be used AFTER Resolve.
func (m *AuthMiddleware) RequireActor(kind entity.ActorKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c)
			if actor.IsGuest() {
				return response.Unauthorized(c, "UNAUTHORIZED", "Debes iniciar sesión")
			}
			if actor.Kind != kind {
				return response.Forbidden(c, "FORBIDDEN", "Acceso denegado")
			}

			return next(c)
		}
	}
}

// BearerToken returns the token from the Authorization header, or "".
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}
