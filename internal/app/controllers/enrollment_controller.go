package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/app/services"
	"github.com/webslearn/webslearn/internal/middleware"
	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// EnrollmentController handles course enrollment requests
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll records the authenticated student's enrollment in a course.
func (ec *EnrollmentController) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if !bindJSON(c, &req) {
		return
	}

	studentID := currentUserID(c)
	if err := ec.enrollmentService.Enroll(c.Request.Context(), studentID, req.CourseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	logger.Info().Int64("studentID", studentID).Int64("courseID", req.CourseID).Msg("Student enrolled")
	c.JSON(http.StatusCreated, dto.APIResponse{Data: dto.SuccessResponse{
		Message: "Enrolled successfully",
	}})
}
