package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/smartwayz/api-go/controllers"
	"github.com/smartwayz/api-go/middleware"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := protected.Group("/uploads")
	{
		uploads.POST("/report-evidence", middleware.RequireCitizen(), uploadController.GetEvidenceUploadURL)
	}
}
