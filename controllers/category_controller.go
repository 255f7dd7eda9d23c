package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartwayz/api-go/models"
	"gorm.io/gorm"
)

// CategoryController serves the fixed reference data: categories,
// subcategories and statuses. All endpoints are read-only.
type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

type categoryItem struct {
	ID                 uint   `json:"id"`
	ReportType         string `json:"report_type"`
	SubcategoriesCount int64  `json:"subcategories_count"`
}

// ListCategories returns every category with its subcategory count.
func (cc *CategoryController) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("report_type").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
		return
	}

	items := make([]categoryItem, 0, len(categories))
	for _, cat := range categories {
		var count int64
		if err := cc.DB.Model(&models.SubCategory{}).
			Where("report_type_id = ?", cat.ID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
			return
		}
		items = append(items, categoryItem{
			ID:                 cat.ID,
			ReportType:         cat.ReportType,
			SubcategoriesCount: count,
		})
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: items})
}

// GetCategorySubCategories returns the subcategories of one category.
func (cc *CategoryController) GetCategorySubCategories(c *gin.Context) {
	var category models.Category
	if err := cc.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var subcategories []models.SubCategory
	if err := cc.DB.Where("report_type_id = ?", category.ID).
		Order("sub_category").Find(&subcategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching subcategories"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: subcategories})
}

// ListSubCategories returns every subcategory, optionally filtered by
// ?category=<id>.
func (cc *CategoryController) ListSubCategories(c *gin.Context) {
	query := cc.DB.Model(&models.SubCategory{})
	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("report_type_id = ?", categoryID)
	}

	var subcategories []models.SubCategory
	if err := query.Order("report_type_id, sub_category").Find(&subcategories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching subcategories"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: subcategories})
}

// ListStatuses returns the report lifecycle codes.
func (cc *CategoryController) ListStatuses(c *gin.Context) {
	var statuses []models.Status
	if err := cc.DB.Order("code").Find(&statuses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching statuses"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: statuses})
}
