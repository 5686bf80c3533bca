// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/delivery/http/response"
	domainerrors "aunerarroz/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the body into req and runs its validate tags.
// It writes the 400 response itself and reports false when the request is unusable.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "No pudimos leer la solicitud")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " inválido")
	}

	return id, nil
}

// actorUserID returns the user id of the signed-in customer.
func actorUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(deliverycontext.GetActor(c).ID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}
