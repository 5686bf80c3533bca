package handler

import (
	"log/slog"
	"net/http"

	"aunerarroz/internal/delivery/http/response"
	"aunerarroz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SuggestionHandlerParams holds dependencies for SuggestionHandler, injected by Fx.
type SuggestionHandlerParams struct {
	fx.In

	SuggestionUC usecase.SuggestionUsecase
	Logger       *slog.Logger
}

// SuggestionHandler serves the suggestion box and the admin inbox.
type SuggestionHandler struct {
	suggestionUC usecase.SuggestionUsecase
	logger       *slog.Logger
}

// NewSuggestionHandler is the constructor for SuggestionHandler
func NewSuggestionHandler(params SuggestionHandlerParams) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionUC: params.SuggestionUC,
		logger:       params.Logger,
	}
}

// SuggestionRequest is a message for the restaurant
type SuggestionRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

// ReviewSuggestionRequest likes or answers a suggestion
type ReviewSuggestionRequest struct {
	Liked         *bool   `json:"liked"`
	AdminResponse *string `json:"admin_response" validate:"omitempty,max=1000"`
}

// SendSuggestion stores a suggestion from the signed-in customer
func (h *SuggestionHandler) SendSuggestion(c echo.Context) error {
	userID, err := actorUserID(c)
	if err != nil {
		return err
	}

	var req SuggestionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	suggestion, err := h.suggestionUC.SendSuggestion(c.Request().Context(), userID, req.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, suggestion)
}

// ListMySuggestions returns the customer's own suggestions
func (h *SuggestionHandler) ListMySuggestions(c echo.Context) error {
	userID, err := actorUserID(c)
	if err != nil {
		return err
	}

	suggestions, err := h.suggestionUC.ListMySuggestions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions)
}

// ListSuggestions returns every suggestion for the admin inbox
func (h *SuggestionHandler) ListSuggestions(c echo.Context) error {
	suggestions, err := h.suggestionUC.ListSuggestions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions)
}

// ReviewSuggestion toggles the like or stores the reply
func (h *SuggestionHandler) ReviewSuggestion(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewSuggestionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	suggestion, err := h.suggestionUC.ReviewSuggestion(c.Request().Context(), id, usecase.ReviewSuggestionInput{
		Liked:    req.Liked,
		Response: req.AdminResponse,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestion)
}
