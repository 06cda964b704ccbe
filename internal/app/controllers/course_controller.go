package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/app/services"
	"github.com/webslearn/webslearn/internal/middleware"
	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// CourseController handles course catalog requests
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// Create registers a new course owned by the authenticated instructor.
func (cc *CourseController) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	instructorID := currentUserID(c)
	id, err := cc.courseService.Create(c.Request.Context(), instructorID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	logger.Info().Int64("courseID", id).Int64("instructorID", instructorID).Msg("Course created")
	c.JSON(http.StatusCreated, dto.APIResponse{Data: dto.CreateCourseResponse{
		ID:      id,
		Message: "Course created successfully",
	}})
}

// List returns the whole course catalog.
func (cc *CourseController) List(c *gin.Context) {
	courses, err := cc.courseService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: courses})
}

// Get returns a single course by id.
func (cc *CourseController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	course, err := cc.courseService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: course})
}

// ListMine returns the courses owned by the authenticated instructor.
func (cc *CourseController) ListMine(c *gin.Context) {
	courses, err := cc.courseService.ListByInstructor(c.Request.Context(), currentUserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: courses})
}

// ListEnrolled returns the courses the authenticated student is enrolled in.
func (cc *CourseController) ListEnrolled(c *gin.Context) {
	courses, err := cc.courseService.ListEnrolled(c.Request.Context(), currentUserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: courses})
}

// Delete removes a course together with its lessons and stored files.
// Only the owning instructor may delete a course.
func (cc *CourseController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	instructorID := currentUserID(c)
	if err := cc.courseService.Delete(c.Request.Context(), id, instructorID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	logger.Info().Int64("courseID", id).Int64("instructorID", instructorID).Msg("Course deleted")
	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{
		Message: "Course deleted successfully",
	}})
}
