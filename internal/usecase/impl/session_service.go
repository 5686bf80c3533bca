// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"aunerarroz/config"
	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
	Logger    *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger

	adminUsername     string
	adminPasswordHash string
	fallback          entity.RoleFallback
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) (usecase.SessionUsecase, error) {
	srv := &sessionService{
		txManager: params.TxManager,
		identity:  params.Identity,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		logger:    params.Logger,
		fallback:  entity.RoleFallbackCustomer,
	}

	if params.Config != nil {
		if params.Config.Admin != nil {
			srv.adminUsername = params.Config.Admin.Username
			srv.adminPasswordHash = params.Config.Admin.PasswordHash
		}
		if params.Config.Auth != nil {
			fallback, err := entity.ParseRoleFallback(params.Config.Auth.RoleFallback)
			if err != nil {
				return nil, errors.Wrap(err, "invalid auth.roleFallback")
			}
			srv.fallback = fallback
		}
	}

	return srv, nil
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveOnStart restores the actor for accessToken. Admin tokens resolve
// locally; anything else goes through the identity provider.
func (srv *sessionService) ResolveOnStart(ctx context.Context, state *entity.AppState, accessToken string) entity.Actor {
	state.BeginResolve()

	if srv.isAdminToken(accessToken) {
		actor := entity.AdminActor()
		state.Resolve(actor, nil)

		return actor
	}

	session, err := srv.identity.GetCurrentSession(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Failed to read current session", slog.Any("error", err))
		session = nil
	}

	actor := srv.resolveSession(ctx, session)
	if actor.IsGuest() {
		session = nil
	}
	state.Resolve(actor, session)

	return actor
}

// OnIdentityChanged applies one identity provider notification to state.
// Events for a user other than the one behind state are ignored. A state
// without a session only takes a sign-in, and only while it is a guest.
func (srv *sessionService) OnIdentityChanged(ctx context.Context, state *entity.AppState, event entity.SessionEvent) entity.Actor {
	subject := event.Subject()
	signedOut := event.Type == entity.SessionSignedOut || event.Session == nil

	current := state.Session()
	switch {
	case current != nil && current.UserID != subject:
		srv.log(ctx).Debug("Ignoring identity change for another user",
			slog.String("event", string(event.Type)),
			slog.Any("user_id", subject),
		)

		return state.Actor()
	case current == nil && (signedOut || !state.Actor().IsGuest()):
		// The administrator has no provider session to lose or replace.
		return state.Actor()
	}

	if signedOut {
		state.Clear()

		return entity.GuestActor()
	}

	state.BeginResolve()
	actor := srv.resolveSession(ctx, event.Session)
	session := event.Session
	if actor.IsGuest() {
		session = nil
	}
	state.Resolve(actor, session)

	return actor
}

// LoginAsAdmin checks both fields without short-circuiting so a wrong
// username and a wrong password take the same path.
func (srv *sessionService) LoginAsAdmin(ctx context.Context, state *entity.AppState, username, password string) (*usecase.AdminLoginOutput, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(srv.adminUsername)) == 1
	passwordOK := srv.adminPasswordHash != "" && srv.hasher.Check(password, srv.adminPasswordHash)

	if srv.adminUsername == "" || !usernameOK || !passwordOK {
		srv.log(ctx).Info("Administrator login rejected")

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, _, err := srv.tokens.GenerateTokens(entity.AdminSentinelID, []string{entity.RoleAdmin.String()})
	if err != nil {
		srv.log(ctx).Error("Failed to issue administrator token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	actor := entity.AdminActor()
	state.Resolve(actor, nil)

	srv.log(ctx).Info("Administrator logged in")

	return &usecase.AdminLoginOutput{
		Actor:       actor,
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(srv.tokens.GetAccessTokenDuration()),
	}, nil
}

// LoginAsCustomer signs in through the identity provider.
func (srv *sessionService) LoginAsCustomer(ctx context.Context, email, password string) (*entity.Session, error) {
	session, err := srv.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, surfaceError(err)
	}

	return session, nil
}

// SignUp registers a customer and signs it in.
func (srv *sessionService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Session, error) {
	session, err := srv.identity.SignUp(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, surfaceError(err)
	}

	return session, nil
}

// Logout always ends with a guest state. A provider failure is logged only.
func (srv *sessionService) Logout(ctx context.Context, state *entity.AppState) error {
	actor := state.Actor()
	if actor.IsAdmin() && state.Session() == nil {
		state.Clear()
		srv.log(ctx).Info("Administrator logged out")

		return nil
	}

	if !actor.IsGuest() {
		if err := srv.identity.SignOut(ctx, state.Session()); err != nil {
			srv.log(ctx).Warn("Identity provider sign-out failed",
				slog.String("actor_id", actor.ID),
				slog.Any("error", err),
			)
		}
	}
	state.Clear()

	return nil
}

func (srv *sessionService) RequestPasswordReset(ctx context.Context, email string) error {
	return surfaceError(srv.identity.ResetPasswordForEmail(ctx, email))
}

func (srv *sessionService) VerifyOneTimeCode(ctx context.Context, email, code, newPassword string) (*entity.Session, error) {
	session, err := srv.identity.VerifyOneTimeCode(ctx, email, code, newPassword)
	if err != nil {
		return nil, surfaceError(err)
	}

	return session, nil
}

// resolveSession maps a provider session to an actor using the stored role.
// A failed or missing lookup applies the configured fallback.
func (srv *sessionService) resolveSession(ctx context.Context, session *entity.Session) entity.Actor {
	if session == nil {
		return entity.GuestActor()
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindByID(ctx, session.UserID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Role lookup failed, applying fallback",
			slog.Any("user_id", session.UserID),
			slog.String("fallback", string(srv.fallback)),
			slog.Any("error", err),
		)

		return srv.fallback.Apply(session.UserID.String())
	}

	return entity.ActorForRole(user.ID.String(), user.EffectiveRole())
}

func (srv *sessionService) isAdminToken(accessToken string) bool {
	if accessToken == "" {
		return false
	}

	claims, err := srv.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return false
	}

	return claims.Subject == entity.AdminSentinelID && entity.RolesFromStrings(claims.Roles).Contains(entity.RoleAdmin)
}
