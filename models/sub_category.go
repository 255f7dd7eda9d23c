package models

// Subcategory codes, partitioned per category.
const (
	// Infrastructure
	SubRoadDamage         = "ROAD_DAMAGE"
	SubStreetlights       = "STREETLIGHTS"
	SubSidewalks          = "SIDEWALKS"
	SubBuilding           = "BUILDING"
	SubBridge             = "BRIDGE"
	SubStructuralCollapse = "STRUCTURAL_COLLAPSE"
	SubSafetySecurity     = "SAFETY_SECURITY"
	SubInfraOther         = "INFRA_OTHER"

	// Hazard
	SubFlooding         = "FLOODING"
	SubLandslide        = "LANDSLIDE"
	SubFireHazard       = "FIRE_HAZARD"
	SubElectricalHazard = "ELECTRICAL_HAZARD"
	SubFallenTrees      = "FALLEN_TREES"
	SubRoadAccident     = "ROAD_ACCIDENT"
	SubBlockedDrainage  = "BLOCKED_DRAINAGE"
	SubEarthquake       = "EARTHQUAKE"
	SubSinkhole         = "SINKHOLE"
	SubPublicHealth     = "PUBLIC_HEALTH"
	SubHazardOther      = "HAZARD_OTHER"
)

// CategorySubcategories maps each category name to the set of
// subcategory codes that belong to it. This is the single source of
// truth for which code is allowed under which category.
var CategorySubcategories = map[string][]string{
	CategoryInfrastructure: {
		SubRoadDamage,
		SubStreetlights,
		SubSidewalks,
		SubBuilding,
		SubBridge,
		SubStructuralCollapse,
		SubSafetySecurity,
		SubInfraOther,
	},
	CategoryHazard: {
		SubFlooding,
		SubLandslide,
		SubFireHazard,
		SubElectricalHazard,
		SubFallenTrees,
		SubRoadAccident,
		SubBlockedDrainage,
		SubEarthquake,
		SubSinkhole,
		SubPublicHealth,
		SubHazardOther,
	},
}

type SubCategory struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ReportTypeID uint   `gorm:"not null;index;uniqueIndex:idx_category_code" json:"report_type"`
	SubCategory  string `gorm:"not null;type:varchar(64);uniqueIndex:idx_category_code" json:"sub_category"`

	ReportType Category `json:"-" gorm:"foreignKey:ReportTypeID;constraint:OnDelete:CASCADE"`
}

func (SubCategory) TableName() string {
	return "sub_categories"
}
