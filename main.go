package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/smartwayz/api-go/config"
	"github.com/smartwayz/api-go/events"
	"github.com/smartwayz/api-go/geocoding"
	"github.com/smartwayz/api-go/observability"
	"github.com/smartwayz/api-go/registry"
	"github.com/smartwayz/api-go/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	// Initialize database and reference data
	db := config.InitDB()

	if err := registry.Sync(db); err != nil {
		log.Fatalf("Failed to sync reference data: %v", err)
	}
	snap, err := registry.Load(db)
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}

	metrics := observability.NewMetrics()

	geoCfg := config.GetGeocodingConfig()
	geocoder := geocoding.NewService(geocoding.Options{
		Primary:   geocoding.NewNominatimClient(geoCfg.NominatimBaseURL, geoCfg.Referer, geoCfg.RequestTimeout),
		Secondary: geocoding.NewBigDataCloudClient(geoCfg.BigDataCloudBaseURL, geoCfg.RequestTimeout),
		Metrics:   metrics,
	})

	eventsCfg := config.GetEventsConfig()
	var publisher events.Publisher = events.NopPublisher{}
	if len(eventsCfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(eventsCfg.KafkaBrokers, eventsCfg.ReportsTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Publishing report events to %s", eventsCfg.ReportsTopic)
	}

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db, snap, geocoder, publisher, metrics)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
