package models

// Report categories are fixed reference data seeded at startup.
const (
	CategoryHazard         = "Hazard"
	CategoryInfrastructure = "Infrastructure"
)

type Category struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ReportType string `gorm:"unique;not null;type:varchar(64)" json:"report_type"`

	SubCategories []SubCategory `json:"-" gorm:"foreignKey:ReportTypeID"`
	Reports       []Report      `json:"-" gorm:"foreignKey:ReportTypeID"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryNames lists every valid category, in seed order.
var CategoryNames = []string{CategoryHazard, CategoryInfrastructure}
