package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smartwayz/api-go/controllers"
	"github.com/smartwayz/api-go/events"
	"github.com/smartwayz/api-go/geocoding"
	"github.com/smartwayz/api-go/middleware"
	"github.com/smartwayz/api-go/observability"
	"github.com/smartwayz/api-go/registry"
	"github.com/smartwayz/api-go/stores"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, snap *registry.Snapshot, geocoder *geocoding.Service, publisher events.Publisher, metrics *observability.Metrics) {
	// Initialize controllers
	reportController := controllers.NewReportController(stores.NewReportStore(db, snap), snap, publisher, metrics)
	categoryController := controllers.NewCategoryController(db)
	geocodingController := controllers.NewGeocodingController(geocoder)
	uploadController := controllers.NewUploadController()

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes: reference data and the geocoding proxy
	public := r.Group("/api")
	{
		public.GET("/categories", categoryController.ListCategories)
		public.GET("/categories/:id/subcategories", categoryController.GetCategorySubCategories)
		public.GET("/subcategories", categoryController.ListSubCategories)
		public.GET("/statuses", categoryController.ListStatuses)
		public.GET("/geocoding/reverse", geocodingController.ReverseGeocode)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupReportRoutes(protected, reportController)
		SetupUploadRoutes(protected, uploadController)
	}
}
