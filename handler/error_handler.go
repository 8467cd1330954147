package handler

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"group-chat-app/dto/res"
	apperrors "group-chat-app/errors"
)

// ErrorHandler is installed as the fiber error handler and maps error kinds
// onto status codes.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := StatusFor(err)
	return ctx.Status(code).JSON(res.NewErrorResponse(code, err.Error()))
}

func StatusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, apperrors.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateRegistration):
		return fiber.StatusConflict
	case errors.Is(err, apperrors.ErrAuthorization):
		return fiber.StatusForbidden
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
