package models

import "gorm.io/gorm"

// Bounds shared by recipe cooking time and ingredient amounts. Both are
// inclusive and part of the API contract.
const (
	MinCookingTime = 1
	MaxCookingTime = 32000

	MinIngredientAmount = 1
	MaxIngredientAmount = 32000
)

// Recipe represents a recipe authored by a user.
type Recipe struct {
	gorm.Model
	AuthorID    uint   `gorm:"not null;index"`
	Name        string `gorm:"size:256;not null"`
	ImageRef    string `gorm:"size:512"`
	Text        string `gorm:"not null"`
	CookingTime int    `gorm:"not null"`

	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID"`
}
