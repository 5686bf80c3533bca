package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/delivery/http/response"
	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves sign-up, login and logout for customers and the administrator.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignUpRequest represents the request body for customer registration
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"max=120"`
}

// LoginRequest represents the request body for customer login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest represents the request body for the administrator login.
// Both fields are compared exactly, so they are not trimmed.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LogoutRequest optionally carries the refresh token to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// PasswordResetRequest asks for a one-time code by email.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest consumes a one-time code and optionally sets a new password.
type VerifyOTPRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password"`
}

// SessionResponse is the resolved actor for the caller.
type SessionResponse struct {
	Actor   entity.Actor    `json:"actor"`
	Session *entity.Session `json:"session,omitempty"`
}

// SignUp handles customer registration
func (h *SessionHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.signedIn(c, session))
}

// Login handles customer login
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.LoginAsCustomer(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.signedIn(c, session))
}

// AdminLogin handles the fixed-credential administrator login
func (h *SessionHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	state := deliverycontext.GetAppState(c)
	output, err := h.sessionUC.LoginAsAdmin(c.Request().Context(), state, req.Username, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Logout ends the caller's session. It always succeeds.
func (h *SessionHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "No pudimos leer la solicitud")
	}

	state := deliverycontext.GetAppState(c)
	if session := state.Session(); session != nil && req.RefreshToken != "" {
		withRefresh := *session
		withRefresh.RefreshToken = req.RefreshToken
		state.Resolve(state.Actor(), &withRefresh)
	}

	if err := h.sessionUC.Logout(c.Request().Context(), state); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{Actor: entity.GuestActor()})
}

// Session reports who the bearer token resolves to.
func (h *SessionHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, SessionResponse{
		Actor:   deliverycontext.GetActor(c),
		Session: deliverycontext.GetAppState(c).Session(),
	})
}

// RequestPasswordReset mails a one-time code. Unknown emails get the same answer.
func (h *SessionHandler) RequestPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.sessionUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"message": "Si el correo está registrado, te enviamos un código",
	})
}

// VerifyOneTimeCode handles the password recovery code
func (h *SessionHandler) VerifyOneTimeCode(c echo.Context) error {
	var req VerifyOTPRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.sessionUC.VerifyOneTimeCode(c.Request().Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.signedIn(c, session))
}

// signedIn applies the new session to the caller's state and reports the result.
func (h *SessionHandler) signedIn(c echo.Context, session *entity.Session) SessionResponse {
	state := deliverycontext.GetAppState(c)
	actor := h.sessionUC.OnIdentityChanged(c.Request().Context(), state, entity.SessionEvent{
		Type:    entity.SessionSignedIn,
		UserID:  session.UserID,
		Session: session,
	})

	return SessionResponse{Actor: actor, Session: session}
}
