package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses with the standard
// error envelope. Unknown errors are logged and reported as 500 without
// leaking internals to the client.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	status, code := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error in request")
		message = "An unexpected error occurred"
	}

	errorDetail := dto.NewErrorDetail(code, message)
	if errors.As(err, &customErr) && customErr.Details != nil {
		errorDetail = errorDetail.WithDetails(customErr.Details)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
}

func classifyError(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrLessonNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrCourseAccessDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials

	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusForbidden, dto.ErrorCodeExpiredToken

	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusForbidden, dto.ErrorCodeInvalidToken

	case errors.Is(err, apperrors.ErrTokenMissing):
		return http.StatusUnauthorized, dto.ErrorCodeTokenRequired

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists

	case errors.Is(err, apperrors.ErrFileMissing),
		errors.Is(err, apperrors.ErrFileTooLarge),
		errors.Is(err, apperrors.ErrFileTypeNotAllowed):
		return http.StatusBadRequest, dto.ErrorCodeUploadRejected

	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed

	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeInvalidRequest

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer
	}
}
