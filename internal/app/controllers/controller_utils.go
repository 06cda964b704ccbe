package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/middleware"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
)

// parseIDParam extracts and validates a positive integer path parameter.
func parseIDParam(c *gin.Context, paramName string) (int64, error) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("Invalid " + paramName + " parameter")
	}
	return id, nil
}

// bindJSON binds the request body and reports validation failures with the
// standard error envelope. Returns false if the request was aborted.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.HandleValidationError(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// currentUserID returns the authenticated caller's id set by the auth middleware.
func currentUserID(c *gin.Context) int64 {
	return middleware.UserID(c)
}
