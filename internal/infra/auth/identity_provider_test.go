package auth

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"aunerarroz/config"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	mockRepo "aunerarroz/internal/mocks/repository"
	mockSvc "aunerarroz/internal/mocks/service"
	"aunerarroz/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type identityFixtures struct {
	provider  *localIdentityProvider
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	authRepo  *mockRepo.MockAuthRepository
	mailer    *mockSvc.MockMailer
	hasher    service.PasswordHasher
	tokens    service.TokenService
}

func createTestIdentityProvider(t *testing.T) identityFixtures {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "access-secret-for-tests", Refresh: "refresh-secret-for-tests"},
		Auth: &config.AuthConfig{
			BcryptCost:        bcrypt.MinCost,
			OTPTTL:            5 * time.Minute,
			MinPasswordLength: 6,
		},
	}

	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	fx := identityFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		authRepo:  mockRepo.NewMockAuthRepository(t),
		mailer:    mockSvc.NewMockMailer(t),
		hasher:    NewBcryptHasher(cfg),
		tokens:    tokens,
	}
	fx.provider = NewIdentityProvider(IdentityProviderParams{
		Config:    cfg,
		TxManager: fx.txManager,
		Hasher:    fx.hasher,
		Tokens:    fx.tokens,
		Mailer:    fx.mailer,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*localIdentityProvider)

	return fx
}

// expectTx runs the next transaction against the fixture repositories.
func (fx identityFixtures) expectTx(t *testing.T) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			f := mockRepo.NewMockRepositoryFactory(t)
			f.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
			f.EXPECT().AuthRepo().Return(fx.authRepo).Maybe()

			return fn(f)
		}).
		Once()
}

func TestIdentityProvider_SignUp(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()

	events, unsubscribe := fx.provider.Subscribe()
	defer unsubscribe()

	fx.expectTx(t)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ana@example.com" && u.Role == entity.RoleCustomer && u.Points == 0 && u.FullName == "Ana"
		})).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.Provider == entity.ProviderEmail && a.ProviderUserID == "ana@example.com" &&
				fx.hasher.Check("secret1", a.PasswordHash)
		})).
		Return(nil)
	var stored *entity.RefreshToken
	fx.authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(_ context.Context, rt *entity.RefreshToken) error {
			stored = rt

			return nil
		})

	session, err := fx.provider.SignUp(ctx, "  Ana@Example.com ", "secret1", " Ana ")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", session.Email)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	claims, err := fx.tokens.ValidateAccessToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.UserID.String(), claims.Subject)
	assert.Equal(t, []string{"client"}, claims.Roles)

	require.NotNil(t, stored)
	assert.Equal(t, claims.SessionID, stored.ID.String())
	assert.Equal(t, util.HashToken(session.RefreshToken), stored.TokenHash)

	select {
	case event := <-events:
		assert.Equal(t, entity.SessionSignedIn, event.Type)
		assert.Equal(t, session.UserID, event.UserID)
		assert.Equal(t, session, event.Session)
	case <-time.After(time.Second):
		t.Fatal("expected a SIGNED_IN event")
	}
}

func TestIdentityProvider_SignUp_ShortPassword(t *testing.T) {
	fx := createTestIdentityProvider(t)

	_, err := fx.provider.SignUp(context.Background(), "ana@example.com", "123", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestIdentityProvider_SignUp_EmailTaken(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()

	fx.expectTx(t)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.provider.SignUp(ctx, "ana@example.com", "secret1", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestIdentityProvider_SignInWithPassword(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()
	userID := uuid.New()

	hash, err := fx.hasher.Hash("secret1")
	require.NoError(t, err)

	fx.expectTx(t)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderEmail, "ana@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: hash}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "ana@example.com", Role: entity.RoleAdmin}, nil)
	fx.authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool { return rt.UserID == userID })).
		Return(nil)

	session, err := fx.provider.SignInWithPassword(ctx, "ana@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	claims, err := fx.tokens.ValidateAccessToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestIdentityProvider_SignInWithPassword_WrongPassword(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()

	hash, err := fx.hasher.Hash("secret1")
	require.NoError(t, err)

	fx.expectTx(t)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderEmail, "ana@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: hash}, nil)

	_, err = fx.provider.SignInWithPassword(ctx, "ana@example.com", "Secret1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestIdentityProvider_SignInWithPassword_UnknownEmail(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()

	fx.expectTx(t)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderEmail, "nadie@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.provider.SignInWithPassword(ctx, "nadie@example.com", "secret1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestIdentityProvider_SignOut(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()
	session := &entity.Session{UserID: uuid.New(), RefreshToken: "raw-refresh"}

	events, unsubscribe := fx.provider.Subscribe()
	defer unsubscribe()

	fx.expectTx(t)
	fx.authRepo.EXPECT().DeleteRefreshTokenByHash(ctx, util.HashToken("raw-refresh")).Return(repository.ErrTokenNotFound)

	require.NoError(t, fx.provider.SignOut(ctx, session))

	event := <-events
	assert.Equal(t, entity.SessionSignedOut, event.Type)
	assert.Equal(t, session.UserID, event.UserID)
	assert.Nil(t, event.Session)
}

func TestIdentityProvider_SignOut_ByAccessToken(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()
	userID := uuid.New()

	accessToken, _, err := fx.tokens.GenerateTokens(userID.String(), []string{"client"})
	require.NoError(t, err)
	claims, err := fx.tokens.ValidateAccessToken(accessToken)
	require.NoError(t, err)

	fx.expectTx(t)
	fx.authRepo.EXPECT().DeleteRefreshTokenByID(ctx, uuid.MustParse(claims.SessionID)).Return(nil)

	require.NoError(t, fx.provider.SignOut(ctx, &entity.Session{UserID: userID, AccessToken: accessToken}))
}

func TestIdentityProvider_SignOut_NilSessionIsSilent(t *testing.T) {
	fx := createTestIdentityProvider(t)

	events, unsubscribe := fx.provider.Subscribe()
	defer unsubscribe()

	require.NoError(t, fx.provider.SignOut(context.Background(), nil))

	select {
	case event := <-events:
		t.Fatalf("unexpected event %s", event.Type)
	default:
	}
}

func TestIdentityProvider_GetCurrentSession(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()
	userID := uuid.New()

	customerToken, _, err := fx.tokens.GenerateTokens(userID.String(), []string{"client"})
	require.NoError(t, err)
	claims, err := fx.tokens.ValidateAccessToken(customerToken)
	require.NoError(t, err)
	sessionID := uuid.MustParse(claims.SessionID)

	adminToken, _, err := fx.tokens.GenerateTokens(entity.AdminSentinelID, []string{"admin"})
	require.NoError(t, err)

	fx.expectTx(t)
	fx.authRepo.EXPECT().
		FindRefreshTokenByID(ctx, sessionID).
		Return(&entity.RefreshToken{ID: sessionID, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil).
		Once()

	session, err := fx.provider.GetCurrentSession(ctx, customerToken)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, userID, session.UserID)

	for _, token := range []string{"", "garbage", adminToken} {
		session, err := fx.provider.GetCurrentSession(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, session)
	}
}

func TestIdentityProvider_GetCurrentSession_AfterSignOut(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()
	userID := uuid.New()

	accessToken, _, err := fx.tokens.GenerateTokens(userID.String(), []string{"client"})
	require.NoError(t, err)
	claims, err := fx.tokens.ValidateAccessToken(accessToken)
	require.NoError(t, err)

	fx.expectTx(t)
	fx.authRepo.EXPECT().
		FindRefreshTokenByID(ctx, uuid.MustParse(claims.SessionID)).
		Return(nil, repository.ErrTokenNotFound).
		Once()

	session, err := fx.provider.GetCurrentSession(ctx, accessToken)

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestIdentityProvider_GetCurrentSession_OtherUsersSession(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()

	accessToken, _, err := fx.tokens.GenerateTokens(uuid.NewString(), []string{"client"})
	require.NoError(t, err)
	claims, err := fx.tokens.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	sessionID := uuid.MustParse(claims.SessionID)

	fx.expectTx(t)
	fx.authRepo.EXPECT().
		FindRefreshTokenByID(ctx, sessionID).
		Return(&entity.RefreshToken{ID: sessionID, UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}, nil).
		Once()

	session, err := fx.provider.GetCurrentSession(ctx, accessToken)

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestIdentityProvider_ResetPassword_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()

	fx.expectTx(t)
	fx.userRepo.EXPECT().FindByEmail(ctx, "nadie@example.com").Return(nil, repository.ErrUserNotFound)

	require.NoError(t, fx.provider.ResetPasswordForEmail(ctx, "nadie@example.com"))
	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestIdentityProvider_ResetAndVerifyOneTimeCode(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "ana@example.com", FullName: "Ana"}

	var stored *entity.OneTimeCode
	var mailed *service.Mail

	fx.expectTx(t)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil).Once()
	fx.authRepo.EXPECT().
		CreateOneTimeCode(ctx, mock.AnythingOfType("*entity.OneTimeCode")).
		RunAndReturn(func(_ context.Context, code *entity.OneTimeCode) error {
			code.ID = uuid.New()
			stored = code

			return nil
		})
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		RunAndReturn(func(_ context.Context, mail *service.Mail) (string, error) {
			mailed = mail

			return "msg-1", nil
		})

	require.NoError(t, fx.provider.ResetPasswordForEmail(ctx, "ana@example.com"))
	require.NotNil(t, stored)
	require.NotNil(t, mailed)
	assert.Equal(t, "ana@example.com", mailed.ToEmail)

	code := regexp.MustCompile(`\d{6}`).FindString(mailed.Text)
	require.Len(t, code, 6)
	assert.NotContains(t, stored.CodeHash, code)

	fx.expectTx(t)
	fx.authRepo.EXPECT().FindLatestOneTimeCode(ctx, "ana@example.com", mock.AnythingOfType("time.Time")).Return(stored, nil)
	fx.authRepo.EXPECT().MarkOneTimeCodeUsed(ctx, stored.ID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil).Once()
	fx.authRepo.EXPECT().
		UpdatePasswordHash(ctx, userID, mock.MatchedBy(func(hash string) bool { return fx.hasher.Check("nueva123", hash) })).
		Return(nil)
	fx.authRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	session, err := fx.provider.VerifyOneTimeCode(ctx, "ana@example.com", code, "nueva123")

	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
}

func TestIdentityProvider_VerifyOneTimeCode_WrongCode(t *testing.T) {
	fx := createTestIdentityProvider(t)
	ctx := context.Background()

	hash, err := fx.hasher.Hash("123456")
	require.NoError(t, err)

	fx.expectTx(t)
	fx.authRepo.EXPECT().
		FindLatestOneTimeCode(ctx, "ana@example.com", mock.AnythingOfType("time.Time")).
		Return(&entity.OneTimeCode{ID: uuid.New(), CodeHash: hash, ExpiresAt: time.Now().Add(time.Minute)}, nil)

	_, err = fx.provider.VerifyOneTimeCode(ctx, "ana@example.com", "654321", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))
}
