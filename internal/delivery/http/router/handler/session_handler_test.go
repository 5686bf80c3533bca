package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	mockUsecase "aunerarroz/internal/mocks/usecase"
	"aunerarroz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSessionHandler(t *testing.T, actor entity.Actor, session *entity.Session) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/auth", asActor(actor, session))
	g.POST("/signup", h.SignUp)
	g.POST("/login", h.Login)
	g.POST("/admin/login", h.AdminLogin)
	g.POST("/logout", h.Logout)
	g.GET("/session", h.Session)
	g.POST("/password/reset", h.RequestPasswordReset)
	g.POST("/otp/verify", h.VerifyOneTimeCode)

	return e, sessionUC
}

func TestSessionHandler_SignUp(t *testing.T) {
	e, sessionUC := setupSessionHandler(t, entity.GuestActor(), nil)
	userID := uuid.New()

	session := &entity.Session{UserID: userID, Email: "ana@example.com", AccessToken: "access"}
	customer := entity.ActorForRole(userID.String(), entity.RoleCustomer)

	sessionUC.EXPECT().
		SignUp(mock.Anything, usecase.SignUpInput{Email: "ana@example.com", Password: "secret1", FullName: "Ana"}).
		Return(session, nil)
	sessionUC.EXPECT().
		OnIdentityChanged(mock.Anything, mock.AnythingOfType("*entity.AppState"),
			entity.SessionEvent{Type: entity.SessionSignedIn, UserID: userID, Session: session}).
		Return(customer)

	rec, env := serve(t, e, http.MethodPost, "/auth/signup",
		`{"email":"ana@example.com","password":"secret1","full_name":"Ana"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out SessionResponse
	decodeData(t, env, &out)
	assert.Equal(t, entity.ActorCustomer, out.Actor.Kind)
	require.NotNil(t, out.Session)
	assert.Equal(t, userID, out.Session.UserID)
	assert.Equal(t, "access", out.Session.AccessToken)
}

func TestSessionHandler_Login_AppliesSignInToState(t *testing.T) {
	e, sessionUC := setupSessionHandler(t, entity.GuestActor(), nil)
	userID := uuid.New()
	session := &entity.Session{UserID: userID, Email: "ana@example.com", AccessToken: "access", RefreshToken: "refresh"}

	sessionUC.EXPECT().LoginAsCustomer(mock.Anything, "ana@example.com", "secret1").Return(session, nil)
	sessionUC.EXPECT().
		OnIdentityChanged(mock.Anything, mock.AnythingOfType("*entity.AppState"), mock.Anything).
		RunAndReturn(func(_ context.Context, state *entity.AppState, event entity.SessionEvent) entity.Actor {
			assert.Equal(t, entity.SessionSignedIn, event.Type)
			assert.Equal(t, userID, event.UserID)
			actor := entity.ActorForRole(userID.String(), entity.RoleCustomer)
			state.Resolve(actor, event.Session)

			return actor
		})

	rec, env := serve(t, e, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out SessionResponse
	decodeData(t, env, &out)
	assert.Equal(t, userID.String(), out.Actor.ID)
	require.NotNil(t, out.Session)
	assert.Equal(t, "refresh", out.Session.RefreshToken)
}

func TestSessionHandler_SignUp_InvalidEmail(t *testing.T) {
	e, _ := setupSessionHandler(t, entity.GuestActor(), nil)

	rec, env := serve(t, e, http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email")
}

func TestSessionHandler_Login_InvalidCredentials(t *testing.T) {
	e, sessionUC := setupSessionHandler(t, entity.GuestActor(), nil)

	sessionUC.EXPECT().
		LoginAsCustomer(mock.Anything, "ana@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := serve(t, e, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Equal(t, "Credenciales incorrectas", env.Error.Message)
}

func TestSessionHandler_AdminLogin(t *testing.T) {
	e, sessionUC := setupSessionHandler(t, entity.GuestActor(), nil)
	expiresAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	sessionUC.EXPECT().
		LoginAsAdmin(mock.Anything, mock.AnythingOfType("*entity.AppState"), "AUNER MASA", "MasaAuner").
		Return(&usecase.AdminLoginOutput{Actor: entity.AdminActor(), AccessToken: "admin-token", ExpiresAt: expiresAt}, nil)

	rec, env := serve(t, e, http.MethodPost, "/auth/admin/login", `{"username":"AUNER MASA","password":"MasaAuner"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var output usecase.AdminLoginOutput
	decodeData(t, env, &output)
	assert.Equal(t, "admin-token", output.AccessToken)
	assert.Equal(t, entity.ActorAdmin, output.Actor.Kind)
	assert.True(t, expiresAt.Equal(output.ExpiresAt))
}

func TestSessionHandler_Logout_AttachesRefreshToken(t *testing.T) {
	userID := uuid.New()
	session := &entity.Session{UserID: userID, AccessToken: "access"}
	e, sessionUC := setupSessionHandler(t, entity.ActorForRole(userID.String(), entity.RoleCustomer), session)

	sessionUC.EXPECT().
		Logout(mock.Anything, mock.AnythingOfType("*entity.AppState")).
		RunAndReturn(func(_ context.Context, state *entity.AppState) error {
			require.NotNil(t, state.Session())
			assert.Equal(t, "refresh", state.Session().RefreshToken)
			assert.Equal(t, "access", state.Session().AccessToken)
			state.Clear()

			return nil
		})

	rec, env := serve(t, e, http.MethodPost, "/auth/logout", `{"refresh_token":"refresh"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out SessionResponse
	decodeData(t, env, &out)
	assert.True(t, out.Actor.IsGuest())
	assert.Empty(t, session.RefreshToken)
}

func TestSessionHandler_Session(t *testing.T) {
	userID := uuid.New()
	e, _ := setupSessionHandler(t, entity.ActorForRole(userID.String(), entity.RoleCustomer), &entity.Session{UserID: userID})

	rec, env := serve(t, e, http.MethodGet, "/auth/session", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out SessionResponse
	decodeData(t, env, &out)
	assert.Equal(t, entity.ActorCustomer, out.Actor.Kind)
	assert.Equal(t, userID.String(), out.Actor.ID)
	require.NotNil(t, out.Session)
	assert.Equal(t, userID, out.Session.UserID)
}

func TestSessionHandler_PasswordRecovery(t *testing.T) {
	e, sessionUC := setupSessionHandler(t, entity.GuestActor(), nil)

	sessionUC.EXPECT().RequestPasswordReset(mock.Anything, "ana@example.com").Return(nil)
	rec, _ := serve(t, e, http.MethodPost, "/auth/password/reset", `{"email":"ana@example.com"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, env := serve(t, e, http.MethodPost, "/auth/otp/verify", `{"email":"ana@example.com","code":"12a456"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	sessionUC.EXPECT().
		VerifyOneTimeCode(mock.Anything, "ana@example.com", "123456", "nueva123").
		Return(nil, domainerrors.ErrInvalidOTP)
	rec, env = serve(t, e, http.MethodPost, "/auth/otp/verify",
		`{"email":"ana@example.com","code":"123456","new_password":"nueva123"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_OTP", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}
