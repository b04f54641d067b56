package models

import "time"

// ShoppingCart marks a recipe as added to a user's shopping cart. Same shape
// and uniqueness as Favorite, but the two sets are independent: a recipe may
// be in both.
type ShoppingCart struct {
	UserID    uint `gorm:"primaryKey"`
	RecipeID  uint `gorm:"primaryKey"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
