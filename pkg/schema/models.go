// Package schema provides database models of the exported time series.
// Species keep identity, merged habitats and period summaries, per-year
// values are kept in long form, one row per species, year and field.
package schema

import (
	"database/sql"
)

// Species is one row of the time-series table without per-year columns.
type Species struct {
	// NameID is UUID v5 of the scientific name.
	NameID string `gorm:"type:uuid;primaryKey"`

	// ScientificName is the name as it was given in the species list.
	ScientificName string `gorm:"type:varchar(500);not null;index"`

	// SisID is the taxon identifier of the Red List.
	SisID string `gorm:"type:varchar(50)"`

	// Type is the class of an animal or "Plantae".
	Type string `gorm:"type:varchar(100);index"`

	// Habitat1 and Habitat2 keep habitats merged over all years.
	Habitat1 string `gorm:"type:text"`
	Habitat2 string `gorm:"type:text"`

	// SplitYear separates Pre and Post summaries.
	SplitYear int `gorm:"type:smallint"`

	WeightPre  sql.NullInt16  `gorm:"type:smallint"`
	WeightPost sql.NullInt16  `gorm:"type:smallint"`
	ThreatPre  sql.NullString `gorm:"type:text"`
	ThreatPost sql.NullString `gorm:"type:text"`
}

// TableName overrides the default "species" pluralization.
func (Species) TableName() string {
	return "species"
}

// AssessmentValue is one per-year value of a species.
type AssessmentValue struct {
	NameID string `gorm:"type:uuid;primaryKey"`
	Year   int    `gorm:"type:smallint;primaryKey"`
	Field  string `gorm:"type:varchar(50);primaryKey"`
	Value  string `gorm:"type:text"`
}
