package models

import "gorm.io/gorm"

// Ingredient is flat reference data: a name plus its canonical unit of
// measure. The (name, unit) pair is deliberately not uniquely constrained.
type Ingredient struct {
	gorm.Model
	Name            string `gorm:"size:128;not null;index"`
	MeasurementUnit string `gorm:"size:64;not null"`
}
