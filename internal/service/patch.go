package service

import (
	"errors"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

// parsePatch maps patch decoding failures onto 400 responses. emptyMessage differs per resource.
func parsePatch(schema dto.PatchSchema, body []byte, emptyMessage string) (dto.Patch, error) {
	patch, err := schema.Parse(body)
	if err == nil {
		return patch, nil
	}

	var unknown *dto.UnknownFieldError
	var invalid *dto.InvalidValueError
	switch {
	case errors.Is(err, dto.ErrEmptyPatch):
		return dto.Patch{}, appErrors.Clone(appErrors.ErrEmptyUpdate, emptyMessage)
	case errors.As(err, &unknown):
		return dto.Patch{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, unknown.Error())
	case errors.As(err, &invalid):
		return dto.Patch{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, invalid.Error())
	default:
		return dto.Patch{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid request body")
	}
}
