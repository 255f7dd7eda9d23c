// Package validation enforces the cross-entity consistency rules a
// report must satisfy before it is persisted. The validator is a pure
// function over its input and a read-only registry snapshot.
package validation

import (
	"fmt"

	"github.com/smartwayz/api-go/models"
	"github.com/smartwayz/api-go/registry"
)

// Rule codes for report validation failures.
const (
	CodeInvalidCategory             = "InvalidCategory"
	CodeMissingSubcategory          = "MissingSubcategory"
	CodeInvalidSubcategory          = "InvalidSubcategory"
	CodeSubcategoryCategoryMismatch = "SubcategoryCategoryMismatch"
	CodeLatitudeOutOfRange          = "LatitudeOutOfRange"
	CodeLongitudeOutOfRange         = "LongitudeOutOfRange"
)

// Fields a validation failure can be attributed to.
const (
	FieldCategory    = "category"
	FieldSubCategory = "sub_category"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
)

// FieldError is one failed rule attributed to a request field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors accumulates every failed rule for a single report. It
// implements error so callers can treat a non-empty set as a failure.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "report is valid"
	}
	return fmt.Sprintf("report validation failed: %s (%s)", e[0].Field, e[0].Code)
}

// ByField groups messages per field, the shape returned to API callers.
func (e Errors) ByField() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// Has reports whether any failure carries the given rule code.
func (e Errors) Has(code string) bool {
	for _, fe := range e {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// ReportInput is a proposed report before persistence.
type ReportInput struct {
	CategoryID    uint
	SubCategoryID *uint
	Latitude      float64
	Longitude     float64
	Title         string
	Description   string
}

// Report is a validated, normalized report ready for the store.
type Report struct {
	CategoryID    uint
	SubCategoryID *uint
	Latitude      float64
	Longitude     float64
	Title         string
	Description   string
}

// ValidateReport checks every rule and accumulates failures; it never
// stops at the first one. A nil error means the report is acceptable.
//
// Rules, in order:
//  1. the category must exist
//  2. a Hazard report must name a subcategory
//  3. a named subcategory must exist and belong to the declared category
//  4. latitude in [-90, 90], longitude in [-180, 180], inclusive
func ValidateReport(in ReportInput, snap *registry.Snapshot) (Report, Errors) {
	var errs Errors

	category, categoryOK := snap.Category(in.CategoryID)
	if !categoryOK {
		errs = append(errs, FieldError{
			Field:   FieldCategory,
			Code:    CodeInvalidCategory,
			Message: "Invalid category selected.",
		})
	}

	if categoryOK && category.Name == models.CategoryHazard && in.SubCategoryID == nil {
		errs = append(errs, FieldError{
			Field:   FieldSubCategory,
			Code:    CodeMissingSubcategory,
			Message: "A subcategory is required for Hazard reports.",
		})
	}

	if in.SubCategoryID != nil {
		sub, ok := snap.SubCategory(*in.SubCategoryID)
		switch {
		case !ok:
			errs = append(errs, FieldError{
				Field:   FieldSubCategory,
				Code:    CodeInvalidSubcategory,
				Message: "Invalid subcategory selected.",
			})
		case categoryOK && sub.CategoryID != category.ID:
			errs = append(errs, FieldError{
				Field:   FieldSubCategory,
				Code:    CodeSubcategoryCategoryMismatch,
				Message: "Subcategory does not belong to the selected category.",
			})
		}
	}

	if in.Latitude < -90 || in.Latitude > 90 {
		errs = append(errs, FieldError{
			Field:   FieldLatitude,
			Code:    CodeLatitudeOutOfRange,
			Message: "Latitude must be between -90 and 90 degrees.",
		})
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		errs = append(errs, FieldError{
			Field:   FieldLongitude,
			Code:    CodeLongitudeOutOfRange,
			Message: "Longitude must be between -180 and 180 degrees.",
		})
	}

	if len(errs) > 0 {
		return Report{}, errs
	}

	return Report{
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		Title:         in.Title,
		Description:   in.Description,
	}, nil
}
