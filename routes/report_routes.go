package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/smartwayz/api-go/controllers"
	"github.com/smartwayz/api-go/middleware"
)

func SetupReportRoutes(protected *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := protected.Group("/reports")
	{
		reports.POST("", middleware.RequireCitizen(), reportController.CreateReport)
		reports.GET("", reportController.ListReports)
		reports.GET("/stats", middleware.RequireAuthority(), reportController.GetReportStats)

		// Reports are append-only for citizens; mutation always refuses.
		reports.PUT("/:id", reportController.UpdateReport)
		reports.PATCH("/:id", reportController.UpdateReport)
		reports.DELETE("/:id", reportController.DeleteReport)
	}
}
