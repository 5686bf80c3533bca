package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"aunerarroz/config"
	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/errors"
	"aunerarroz/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	otpDigits            = 6
	subscriberBufferSize = 16
)

// IdentityProviderParams holds dependencies for the local identity provider, injected by Fx.
type IdentityProviderParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
	Mailer    service.Mailer
	Logger    *slog.Logger
}

// localIdentityProvider authenticates customers against the users and
// user_authentications tables and keeps refresh tokens as sessions.
type localIdentityProvider struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokens            service.TokenService
	mailer            service.Mailer
	logger            *slog.Logger
	otpTTL            time.Duration
	minPasswordLength int
	now               func() time.Time

	mu          sync.Mutex
	subscribers map[int]chan entity.SessionEvent
	nextSubID   int
}

// NewIdentityProvider is the constructor for the local identity provider.
func NewIdentityProvider(params IdentityProviderParams) service.IdentityProvider {
	p := &localIdentityProvider{
		txManager:   params.TxManager,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		mailer:      params.Mailer,
		logger:      params.Logger,
		otpTTL:      10 * time.Minute,
		now:         time.Now,
		subscribers: make(map[int]chan entity.SessionEvent),
	}
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.OTPTTL > 0 {
			p.otpTTL = params.Config.Auth.OTPTTL
		}
		p.minPasswordLength = params.Config.Auth.MinPasswordLength
	}

	return p
}

func (p *localIdentityProvider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// SignUp creates the user row with role client and zero points, then signs it in.
func (p *localIdentityProvider) SignUp(ctx context.Context, email, password, fullName string) (*entity.Session, error) {
	email = normalizeEmail(email)
	if err := p.checkPassword(password); err != nil {
		return nil, err
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var session *entity.Session
	err = p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		user := &entity.User{
			ID:       uuid.New(),
			Email:    email,
			FullName: strings.TrimSpace(fullName),
			Role:     entity.RoleCustomer,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hash,
		}); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		session, err = p.issueSession(ctx, authRepo, user)

		return err
	})
	if err != nil {
		p.log(ctx).Warn("Sign up failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	p.log(ctx).Info("Customer signed up", slog.Any("user_id", session.UserID))
	p.emit(entity.SessionEvent{Type: entity.SessionSignedIn, UserID: session.UserID, Session: session})

	return session, nil
}

// SignInWithPassword verifies the credential and opens a new session.
func (p *localIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)

	var session *entity.Session
	err := p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		credential, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find credential")
		}

		if !p.hasher.Check(password, credential.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, credential.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find user")
		}

		session, err = p.issueSession(ctx, authRepo, user)

		return err
	})
	if err != nil {
		return nil, err
	}

	p.log(ctx).Info("Customer signed in", slog.Any("user_id", session.UserID))
	p.emit(entity.SessionEvent{Type: entity.SessionSignedIn, UserID: session.UserID, Session: session})

	return session, nil
}

// SignOut deletes the refresh token behind session. Without a refresh token
// the session id carried by the access token is used. A session that is
// already gone is not an error.
func (p *localIdentityProvider) SignOut(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return nil
	}

	sessionID, hasSessionID := p.sessionID(session.AccessToken)
	if session.RefreshToken == "" && !hasSessionID {
		p.emit(entity.SessionEvent{Type: entity.SessionSignedOut, UserID: session.UserID})

		return nil
	}

	err := p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		var err error
		if session.RefreshToken != "" {
			err = authRepo.DeleteRefreshTokenByHash(ctx, util.HashToken(session.RefreshToken))
		} else {
			err = authRepo.DeleteRefreshTokenByID(ctx, sessionID)
		}
		if err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})

	p.emit(entity.SessionEvent{Type: entity.SessionSignedOut, UserID: session.UserID})

	return err
}

// GetCurrentSession reads the session from a bearer access token. The token
// only counts while the refresh token of the same issue is still stored, so
// a signed out session stops resolving before the access token expires.
// Admin tokens are not provider sessions.
func (p *localIdentityProvider) GetCurrentSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	if accessToken == "" {
		return nil, nil
	}

	claims, err := p.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, nil //nolint:nilerr // an unusable token means there is no session
	}
	if claims.Subject == entity.AdminSentinelID {
		return nil, nil
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, nil //nolint:nilerr // same as above
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, nil //nolint:nilerr // tokens without a session id cannot be revoked
	}

	var stored *entity.RefreshToken
	err = p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := repoFactory.AuthRepo().FindRefreshTokenByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		stored = token

		return nil
	})
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.UserID != userID || !p.now().Before(stored.ExpiresAt) {
		p.log(ctx).Debug("Access token belongs to a closed session", slog.String("session_id", sessionID.String()))

		return nil, nil
	}

	session := &entity.Session{
		UserID:      userID,
		AccessToken: accessToken,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}

// ResetPasswordForEmail stores a hashed one-time code and mails it.
func (p *localIdentityProvider) ResetPasswordForEmail(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	code, err := util.RandomDigits(otpDigits)
	if err != nil {
		return errors.Wrap(err, "failed to generate one-time code")
	}
	codeHash, err := p.hasher.Hash(code)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var user *entity.User
	err = p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return repoFactory.AuthRepo().CreateOneTimeCode(ctx, &entity.OneTimeCode{
			Email:     email,
			CodeHash:  codeHash,
			ExpiresAt: p.now().Add(p.otpTTL),
		})
	})
	if err != nil {
		return err
	}
	if user == nil {
		// Unknown emails are not disclosed.
		p.log(ctx).Debug("Password reset requested for unknown email")

		return nil
	}

	messageID, err := p.mailer.Send(ctx, &service.Mail{
		ToEmail: email,
		ToName:  user.FullName,
		Subject: "Tu código de Auner Arroz",
		Text: fmt.Sprintf("Tu código de verificación es %s. Vence en %d minutos.",
			code, int(p.otpTTL.Minutes())),
		HTML: fmt.Sprintf("<p>Tu código de verificación es <strong>%s</strong>.</p><p>Vence en %d minutos.</p>",
			code, int(p.otpTTL.Minutes())),
	})
	if err != nil {
		return errors.Wrap(domainerrors.ErrBackendUnavailable, err.Error())
	}

	p.log(ctx).Info("One-time code sent", slog.Any("user_id", user.ID), slog.String("message_id", messageID))

	return nil
}

// VerifyOneTimeCode consumes the newest usable code for email and, when
// newPassword is set, replaces the password before opening a session.
func (p *localIdentityProvider) VerifyOneTimeCode(ctx context.Context, email, code, newPassword string) (*entity.Session, error) {
	email = normalizeEmail(email)

	var newHash string
	if newPassword != "" {
		if err := p.checkPassword(newPassword); err != nil {
			return nil, err
		}

		hash, err := p.hasher.Hash(newPassword)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		newHash = hash
	}

	var session *entity.Session
	err := p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		now := p.now()

		otp, err := authRepo.FindLatestOneTimeCode(ctx, email, now)
		if err != nil {
			if errors.Is(err, repository.ErrOneTimeCodeNotFound) {
				return domainerrors.ErrInvalidOTP
			}

			return errors.Wrap(err, "failed to find one-time code")
		}
		if !otp.IsUsable(now) || !p.hasher.Check(code, otp.CodeHash) {
			return domainerrors.ErrInvalidOTP
		}
		if err := authRepo.MarkOneTimeCodeUsed(ctx, otp.ID, now); err != nil {
			return errors.Wrap(err, "failed to mark one-time code used")
		}

		user, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidOTP
			}

			return errors.Wrap(err, "failed to find user")
		}

		if newHash != "" {
			if err := authRepo.UpdatePasswordHash(ctx, user.ID, newHash); err != nil {
				return errors.Wrap(err, "failed to update password")
			}
		}

		session, err = p.issueSession(ctx, authRepo, user)

		return err
	})
	if err != nil {
		return nil, err
	}

	p.emit(entity.SessionEvent{Type: entity.SessionPasswordRecovery, UserID: session.UserID, Session: session})

	return session, nil
}

// Subscribe registers a listener. Events are dropped for a listener whose buffer is full.
func (p *localIdentityProvider) Subscribe() (<-chan entity.SessionEvent, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSubID
	p.nextSubID++
	ch := make(chan entity.SessionEvent, subscriberBufferSize)
	p.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()

			delete(p.subscribers, id)
			close(ch)
		})
	}

	return ch, unsubscribe
}

func (p *localIdentityProvider) emit(event entity.SessionEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, ch := range p.subscribers {
		select {
		case ch <- event:
		default:
			p.logger.Warn("Dropping session event for slow subscriber",
				slog.Int("subscriber", id), slog.String("event", string(event.Type)))
		}
	}
}

// issueSession signs tokens for user and persists the hashed refresh token.
func (p *localIdentityProvider) issueSession(ctx context.Context, authRepo repository.AuthRepository, user *entity.User) (*entity.Session, error) {
	role := user.EffectiveRole()
	accessToken, refreshToken, err := p.tokens.GenerateTokens(user.ID.String(), []string{role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	sessionID, ok := p.sessionID(accessToken)
	if !ok {
		return nil, errors.New("issued access token has no session id")
	}

	now := p.now()
	if err := authRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: util.HashToken(refreshToken),
		ExpiresAt: now.Add(p.tokens.GetRefreshTokenDuration()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.Session{
		UserID:       user.ID,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(p.tokens.GetAccessTokenDuration()),
	}, nil
}

// sessionID reads the session id out of a valid access token.
func (p *localIdentityProvider) sessionID(accessToken string) (uuid.UUID, bool) {
	if accessToken == "" {
		return uuid.Nil, false
	}

	claims, err := p.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func (p *localIdentityProvider) checkPassword(password string) error {
	if len(password) < p.minPasswordLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("mínimo %d caracteres", p.minPasswordLength))
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
