package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartwayz/api-go/events"
	"github.com/smartwayz/api-go/models"
	"github.com/smartwayz/api-go/observability"
	"github.com/smartwayz/api-go/registry"
	"github.com/smartwayz/api-go/stores"
	"github.com/smartwayz/api-go/utils"
	"github.com/smartwayz/api-go/validation"
)

// ReportStorage is the slice of the store the controller needs.
type ReportStorage interface {
	Create(report *models.Report) error
	List(filters stores.ReportFilters) ([]models.Report, error)
	CountByCategory() (int64, []stores.CategoryCount, error)
}

type ReportController struct {
	Store     ReportStorage
	Registry  *registry.Snapshot
	Publisher events.Publisher
	Metrics   *observability.Metrics
}

func NewReportController(store ReportStorage, snap *registry.Snapshot, publisher events.Publisher, metrics *observability.Metrics) *ReportController {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ReportController{
		Store:     store,
		Registry:  snap,
		Publisher: publisher,
		Metrics:   metrics,
	}
}

type CreateReportInput struct {
	Category    *uint    `json:"category" binding:"required"`
	SubCategory *uint    `json:"sub_category"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PhotoURLs   []string `json:"photo_urls"`
}

// CreateReport validates and persists a new report for the
// authenticated citizen. Validation failures come back with
// field-level messages so the caller can fix the request.
func (rc *ReportController) CreateReport(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input CreateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	validated, errs := validation.ValidateReport(validation.ReportInput{
		CategoryID:    *input.Category,
		SubCategoryID: input.SubCategory,
		Latitude:      *input.Latitude,
		Longitude:     *input.Longitude,
		Title:         input.Title,
		Description:   input.Description,
	}, rc.Registry)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Report validation failed",
			"errors":  errs.ByField(),
		})
		return
	}

	report := models.Report{
		CitizenID:     user.UserID,
		ReportTypeID:  validated.CategoryID,
		SubCategoryID: validated.SubCategoryID,
		Latitude:      validated.Latitude,
		Longitude:     validated.Longitude,
		Title:         validated.Title,
		Description:   validated.Description,
		PhotoURLs:     input.PhotoURLs,
	}

	if err := rc.Store.Create(&report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create report", "success": false})
		return
	}

	rc.Metrics.ReportsCreated.Inc()

	category, _ := rc.Registry.Category(report.ReportTypeID)
	if err := rc.Publisher.PublishReportCreated(c.Request.Context(), events.ReportCreated{
		ID:            report.ID,
		CitizenID:     report.CitizenID,
		CategoryID:    report.ReportTypeID,
		CategoryName:  category.Name,
		SubCategoryID: report.SubCategoryID,
		Latitude:      report.Latitude,
		Longitude:     report.Longitude,
		CreatedAt:     report.CreatedAt,
	}); err != nil {
		// Best effort only; the report itself is already persisted.
		log.Printf("publish report-created event: %v", err)
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Message: "Report created successfully. Your report has been submitted.",
		Data:    report,
	})
}

// ListReports returns reports newest first. Citizens only ever see
// their own reports; authorities see everything and may filter by
// citizen_id, category and sub_category.
func (rc *ReportController) ListReports(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	filters := stores.ReportFilters{
		CitizenID:     parseUintQuery(c, "citizen_id"),
		CategoryID:    parseUintQuery(c, "category"),
		SubCategoryID: parseUintQuery(c, "sub_category"),
	}
	if user.IsCitizen() {
		filters.CitizenID = user.UserID
	}

	reports, err := rc.Store.List(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reports", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    reports,
	})
}

// GetReportStats aggregates report totals per category.
func (rc *ReportController) GetReportStats(c *gin.Context) {
	total, byCategory, err := rc.Store.CountByCategory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching report stats", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_reports": total,
		"by_category":   byCategory,
	})
}

// UpdateReport always refuses: reports are read-only once submitted.
func (rc *ReportController) UpdateReport(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"success": false,
		"message": "Citizens cannot update reports. Reports are read-only once submitted.",
	})
}

// DeleteReport always refuses: removal is an authority-side process.
func (rc *ReportController) DeleteReport(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"success": false,
		"message": "Citizens cannot delete reports. Please contact authorities if you need to remove a report.",
	})
}

func parseUintQuery(c *gin.Context, name string) uint {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}
	return uint(parsed)
}
