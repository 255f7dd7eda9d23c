// Package registry holds the fixed reference data the rest of the API
// validates against: categories, their subcategories, and report
// lifecycle statuses. The data is seeded once at startup and read as an
// immutable snapshot afterwards.
package registry

import (
	"errors"
	"fmt"

	"github.com/smartwayz/api-go/models"
	"gorm.io/gorm"
)

// ErrMissingReferenceData means required reference rows (for example
// the default "pending" status) are absent from the database. This is
// a deployment problem, not a caller problem.
var ErrMissingReferenceData = errors.New("registry: required reference data missing")

// CategoryEntry is a registry view of one category row.
type CategoryEntry struct {
	ID   uint
	Name string
}

// SubCategoryEntry is a registry view of one subcategory row,
// including its parent category.
type SubCategoryEntry struct {
	ID         uint
	Code       string
	CategoryID uint
}

// Snapshot is a read-only view of the reference data. It is built once
// and never mutated, so it is safe to share across requests.
type Snapshot struct {
	categories       map[uint]CategoryEntry
	categoriesByName map[string]CategoryEntry
	subcategories    map[uint]SubCategoryEntry
	defaultStatusID  uint
	statusIDs        map[string]uint
}

// Category looks up a category by primary key.
func (s *Snapshot) Category(id uint) (CategoryEntry, bool) {
	c, ok := s.categories[id]
	return c, ok
}

// CategoryByName looks up a category by its name ("Hazard", "Infrastructure").
func (s *Snapshot) CategoryByName(name string) (CategoryEntry, bool) {
	c, ok := s.categoriesByName[name]
	return c, ok
}

// SubCategory looks up a subcategory by primary key.
func (s *Snapshot) SubCategory(id uint) (SubCategoryEntry, bool) {
	sc, ok := s.subcategories[id]
	return sc, ok
}

// DefaultStatusID returns the id of the "pending" status row.
func (s *Snapshot) DefaultStatusID() uint {
	return s.defaultStatusID
}

// StatusID looks up a status row id by its code.
func (s *Snapshot) StatusID(code string) (uint, bool) {
	id, ok := s.statusIDs[code]
	return id, ok
}

// Sync get-or-creates the reference rows so a fresh database is usable
// without a separate seeding step.
func Sync(db *gorm.DB) error {
	for _, name := range models.CategoryNames {
		var cat models.Category
		if err := db.Where(models.Category{ReportType: name}).
			FirstOrCreate(&cat).Error; err != nil {
			return fmt.Errorf("registry: sync category %q: %w", name, err)
		}
		for _, code := range models.CategorySubcategories[name] {
			if err := db.Where(models.SubCategory{ReportTypeID: cat.ID, SubCategory: code}).
				FirstOrCreate(&models.SubCategory{}).Error; err != nil {
				return fmt.Errorf("registry: sync subcategory %q: %w", code, err)
			}
		}
	}
	for _, code := range models.StatusCodes {
		if err := db.Where(models.Status{Code: code}).
			FirstOrCreate(&models.Status{}).Error; err != nil {
			return fmt.Errorf("registry: sync status %q: %w", code, err)
		}
	}
	return nil
}

// Load builds a Snapshot from the database. It fails with
// ErrMissingReferenceData if the default status row is absent.
func Load(db *gorm.DB) (*Snapshot, error) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("registry: load categories: %w", err)
	}
	var subcategories []models.SubCategory
	if err := db.Find(&subcategories).Error; err != nil {
		return nil, fmt.Errorf("registry: load subcategories: %w", err)
	}
	var statuses []models.Status
	if err := db.Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("registry: load statuses: %w", err)
	}

	snap := &Snapshot{
		categories:       make(map[uint]CategoryEntry, len(categories)),
		categoriesByName: make(map[string]CategoryEntry, len(categories)),
		subcategories:    make(map[uint]SubCategoryEntry, len(subcategories)),
		statusIDs:        make(map[string]uint, len(statuses)),
	}
	for _, c := range categories {
		entry := CategoryEntry{ID: c.ID, Name: c.ReportType}
		snap.categories[c.ID] = entry
		snap.categoriesByName[c.ReportType] = entry
	}
	for _, sc := range subcategories {
		snap.subcategories[sc.ID] = SubCategoryEntry{
			ID:         sc.ID,
			Code:       sc.SubCategory,
			CategoryID: sc.ReportTypeID,
		}
	}
	for _, st := range statuses {
		snap.statusIDs[st.Code] = st.ID
	}

	pendingID, ok := snap.statusIDs[models.StatusPending]
	if !ok {
		return nil, fmt.Errorf("%w: status %q", ErrMissingReferenceData, models.StatusPending)
	}
	snap.defaultStatusID = pendingID

	if len(snap.categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrMissingReferenceData)
	}
	return snap, nil
}

// NewStaticSnapshot builds a Snapshot directly from entries without a
// database. Intended for tests.
func NewStaticSnapshot(categories []CategoryEntry, subcategories []SubCategoryEntry, defaultStatusID uint) *Snapshot {
	snap := &Snapshot{
		categories:       make(map[uint]CategoryEntry, len(categories)),
		categoriesByName: make(map[string]CategoryEntry, len(categories)),
		subcategories:    make(map[uint]SubCategoryEntry, len(subcategories)),
		defaultStatusID:  defaultStatusID,
		statusIDs:        map[string]uint{models.StatusPending: defaultStatusID},
	}
	for _, c := range categories {
		snap.categories[c.ID] = c
		snap.categoriesByName[c.Name] = c
	}
	for _, sc := range subcategories {
		snap.subcategories[sc.ID] = sc
	}
	return snap
}
