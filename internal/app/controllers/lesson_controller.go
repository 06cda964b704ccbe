package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/app/services"
	"github.com/webslearn/webslearn/internal/middleware"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// LessonController handles lesson content requests
type LessonController struct {
	lessonService services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService services.LessonService) *LessonController {
	return &LessonController{
		lessonService: lessonService,
	}
}

// Create adds a lesson that references external content by URL.
func (lc *LessonController) Create(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateLessonRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := lc.lessonService.AddByURL(c.Request.Context(), courseID, currentUserID(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: dto.CreateLessonResponse{
		ID:      id,
		Message: "Lesson created successfully",
	}})
}

// Upload adds a lesson with an attached file sent as multipart form data.
// The file travels in the "file" part alongside the form fields.
func (lc *LessonController) Upload(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var form dto.UploadLessonForm
	if err := c.ShouldBind(&form); err != nil {
		errorDetail := dto.HandleValidationError(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.ErrFileMissing)
		return
	}

	id, fileURL, err := lc.lessonService.AddByUpload(c.Request.Context(), courseID, currentUserID(c), &form, file)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	logger.Info().Int64("lessonID", id).Str("file", fileURL).Msg("Lesson file uploaded")
	c.JSON(http.StatusCreated, dto.APIResponse{Data: dto.CreateLessonResponse{
		ID:      id,
		FileURL: &fileURL,
		Message: "Lesson uploaded successfully",
	}})
}

// List returns the lessons of a course in display order.
func (lc *LessonController) List(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	lessons, err := lc.lessonService.List(c.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: lessons})
}

// Update edits a lesson's title, description and content URLs.
func (lc *LessonController) Update(c *gin.Context) {
	lessonID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateLessonRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := lc.lessonService.Update(c.Request.Context(), lessonID, currentUserID(c), &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{
		Message: "Lesson updated successfully",
	}})
}

// Delete removes a lesson and its stored file, if any.
func (lc *LessonController) Delete(c *gin.Context) {
	lessonID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := lc.lessonService.Delete(c.Request.Context(), lessonID, currentUserID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{
		Message: "Lesson deleted successfully",
	}})
}

// Reorder applies a new display order to the lessons of a course.
func (lc *LessonController) Reorder(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ReorderLessonsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := lc.lessonService.Reorder(c.Request.Context(), courseID, currentUserID(c), req.Lessons); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{
		Message: "Lessons reordered successfully",
	}})
}
