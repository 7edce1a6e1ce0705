// Package handler contains the echo handlers for the JSON API.
package handler

import (
	domainerrors "usermgmt/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}

	return c.Validate(req)
}

// pathUUID parses a path parameter. Malformed ids are reported as notFound.
func pathUUID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}
