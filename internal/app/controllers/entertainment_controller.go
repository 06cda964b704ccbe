package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/app/services"
)

// EntertainmentController serves the curated entertainment feed
type EntertainmentController struct {
	entertainmentService services.EntertainmentService
}

// NewEntertainmentController creates a new EntertainmentController
func NewEntertainmentController(entertainmentService services.EntertainmentService) *EntertainmentController {
	return &EntertainmentController{
		entertainmentService: entertainmentService,
	}
}

// List returns the entertainment content items.
func (ec *EntertainmentController) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.APIResponse{Data: ec.entertainmentService.List()})
}
