// Package handler contains the HTTP handlers of the planner API.
package handler

import (
	"net/http"

	"columbus/internal/delivery/api/response"
	deliverycontext "columbus/internal/delivery/context"
	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck answers unauthenticated liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// currentIdentity returns the caller placed on the request by the auth middleware.
func currentIdentity(c echo.Context) (entity.Identity, error) {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return entity.Identity{}, domainerrors.ErrAuth
	}

	return *identity, nil
}

func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidation.WithMessage("Malformed request").WithDetails(err.Error())
	}

	return c.Validate(dst)
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("invalid path parameter", name)
	}

	return id, nil
}
