// Package stores wraps the persistence queries the controllers need.
package stores

import (
	"fmt"

	"github.com/smartwayz/api-go/models"
	"github.com/smartwayz/api-go/registry"
	"gorm.io/gorm"
)

// ReportFilters narrows a report listing. Zero values mean "no filter".
type ReportFilters struct {
	CitizenID     uint
	CategoryID    uint
	SubCategoryID uint
}

// CategoryCount is one row of the per-category stats aggregation.
type CategoryCount struct {
	CategoryName string `json:"category" gorm:"column:report_type"`
	Count        int64  `json:"count"`
}

// ReportStore persists reports. Creation assigns the server timestamp
// and the default "pending" status; no update or delete is offered to
// the citizen-facing surface.
type ReportStore struct {
	DB       *gorm.DB
	Registry *registry.Snapshot
}

func NewReportStore(db *gorm.DB, snap *registry.Snapshot) *ReportStore {
	return &ReportStore{DB: db, Registry: snap}
}

// Create inserts a single report row. StatusID defaults to the
// registry's pending status when unset; CreatedAt is assigned by gorm
// at insert time.
func (rs *ReportStore) Create(report *models.Report) error {
	if report.StatusID == 0 {
		report.StatusID = rs.Registry.DefaultStatusID()
	}
	if err := rs.DB.Create(report).Error; err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// List returns reports matching the filters, newest first.
func (rs *ReportStore) List(filters ReportFilters) ([]models.Report, error) {
	query := rs.DB.Model(&models.Report{})
	if filters.CitizenID != 0 {
		query = query.Where("citizen_id = ?", filters.CitizenID)
	}
	if filters.CategoryID != 0 {
		query = query.Where("report_type_id = ?", filters.CategoryID)
	}
	if filters.SubCategoryID != 0 {
		query = query.Where("sub_category_id = ?", filters.SubCategoryID)
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// CountByCategory aggregates report totals per category, most reported
// first.
func (rs *ReportStore) CountByCategory() (int64, []CategoryCount, error) {
	var total int64
	if err := rs.DB.Model(&models.Report{}).Count(&total).Error; err != nil {
		return 0, nil, fmt.Errorf("count reports: %w", err)
	}

	var byCategory []CategoryCount
	err := rs.DB.Model(&models.Report{}).
		Select("categories.report_type, count(reports.id) as count").
		Joins("JOIN categories ON categories.id = reports.report_type_id").
		Group("categories.report_type").
		Order("count DESC").
		Scan(&byCategory).Error
	if err != nil {
		return 0, nil, fmt.Errorf("count reports by category: %w", err)
	}
	return total, byCategory, nil
}
