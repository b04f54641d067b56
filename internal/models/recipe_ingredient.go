package models

// RecipeIngredient is one line of a recipe's composition: this recipe uses
// that ingredient in the given amount. The composite primary key
// (RecipeID, IngredientID) guarantees a recipe lists each ingredient at
// most once; the constraint lives in the storage layer so concurrent
// duplicate inserts cannot slip through.
type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey"`
	IngredientID uint `gorm:"primaryKey"`
	Amount       int  `gorm:"not null"`

	Recipe     Recipe     `gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
