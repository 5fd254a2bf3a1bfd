package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"employee-portal/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	var (
		validationErr *domain.ValidationError
		forbiddenErr  *domain.ForbiddenError
		notFoundErr   *domain.NotFoundError
		transitionErr *domain.InvalidTransitionError
		conflictErr   *domain.ConflictError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
		errorCode = "VALIDATION_ERROR"
		message = validationErr.Error()
	case errors.As(err, &forbiddenErr):
		code = fiber.StatusForbidden
		errorCode = "FORBIDDEN"
		message = forbiddenErr.Error()
	case errors.As(err, &notFoundErr):
		code = fiber.StatusNotFound
		errorCode = "NOT_FOUND"
		message = notFoundErr.Error()
	case errors.As(err, &transitionErr):
		code = fiber.StatusConflict
		errorCode = "INVALID_TRANSITION"
		message = transitionErr.Error()
	case errors.As(err, &conflictErr):
		code = fiber.StatusConflict
		errorCode = "CONFLICT"
		message = conflictErr.Error()
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message

		switch code {
		case fiber.StatusBadRequest:
			errorCode = "BAD_REQUEST"
		case fiber.StatusUnauthorized:
			errorCode = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			errorCode = "FORBIDDEN"
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusConflict:
			errorCode = "CONFLICT"
		case fiber.StatusUnprocessableEntity:
			errorCode = "VALIDATION_ERROR"
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func NewError(code int, message string) *fiber.Error {
	return fiber.NewError(code, message)
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
