package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webslearn/webslearn/internal/app/controllers"
	"github.com/webslearn/webslearn/internal/app/models"
	"github.com/webslearn/webslearn/internal/middleware"
)

// Controllers groups the controller instances wired into the router.
type Controllers struct {
	Auth          *controllers.AuthController
	Course        *controllers.CourseController
	Lesson        *controllers.LessonController
	Enrollment    *controllers.EnrollmentController
	Entertainment *controllers.EntertainmentController
}

// SetupRoutes registers all API routes on the engine. Static lesson files are
// served under /uploads from the configured storage directory.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware, storagePath string) {
	router.Static("/uploads", storagePath)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public endpoints
	api.POST("/register", ctrl.Auth.Register)
	api.POST("/login", ctrl.Auth.Login)
	api.GET("/entertainment", ctrl.Entertainment.List)
	api.GET("/courses", ctrl.Course.List)
	api.GET("/courses/:id", ctrl.Course.Get)
	api.GET("/courses/:id/lessons", ctrl.Lesson.List)

	// Endpoints requiring a bearer token
	authed := api.Group("")
	authed.Use(authMiddleware.JWTAuth())
	{
		authed.GET("/profile", ctrl.Auth.GetProfile)
		authed.GET("/student/courses", ctrl.Course.ListEnrolled)
		authed.POST("/enrollments", ctrl.Enrollment.Enroll)
	}

	// Instructor-only endpoints
	instructor := api.Group("")
	instructor.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleInstructor)))
	{
		instructor.POST("/courses", ctrl.Course.Create)
		instructor.DELETE("/courses/:id", ctrl.Course.Delete)
		instructor.GET("/instructor/courses", ctrl.Course.ListMine)
		instructor.POST("/courses/:id/lessons", ctrl.Lesson.Create)
		instructor.POST("/courses/:id/lessons/upload", ctrl.Lesson.Upload)
		instructor.POST("/courses/:id/lessons/reorder", ctrl.Lesson.Reorder)
		instructor.PUT("/lessons/:id", ctrl.Lesson.Update)
		instructor.DELETE("/lessons/:id", ctrl.Lesson.Delete)
	}
}
