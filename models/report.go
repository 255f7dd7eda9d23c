package models

import (
	"time"

	"github.com/lib/pq"
)

// Report is a citizen-submitted, geolocated issue. Reports are
// append-only from the citizen's side: no update or delete path exists
// once created. Deleting a citizen cascades to their reports; deleting
// a subcategory nulls the reference.
type Report struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CitizenID     uint    `gorm:"not null;index" json:"citizen"`
	ReportTypeID  uint    `gorm:"not null;index" json:"report_type"`
	SubCategoryID *uint   `gorm:"index" json:"sub_category"`
	StatusID      uint    `gorm:"not null" json:"status"`
	Latitude      float64 `gorm:"not null;type:decimal(9,6)" json:"latitude"`
	Longitude     float64 `gorm:"not null;type:decimal(9,6)" json:"longitude"`
	Title         string  `gorm:"type:varchar(128)" json:"title,omitempty"`
	Description   string  `gorm:"type:text" json:"description,omitempty"`

	// Evidence photo URLs uploaded ahead of submission.
	PhotoURLs pq.StringArray `gorm:"type:text[]" json:"photo_urls,omitempty"`

	Citizen     Citizen      `json:"-" gorm:"foreignKey:CitizenID;constraint:OnDelete:CASCADE"`
	ReportType  Category     `json:"-" gorm:"foreignKey:ReportTypeID"`
	SubCategory *SubCategory `json:"-" gorm:"foreignKey:SubCategoryID;constraint:OnDelete:SET NULL"`
	Status      Status       `json:"-" gorm:"foreignKey:StatusID"`
}

func (Report) TableName() string {
	return "reports"
}
