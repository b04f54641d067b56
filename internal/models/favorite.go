package models

import "time"

// Favorite marks a recipe as favorited by a user. The composite primary key
// (UserID, RecipeID) ensures the pair is unique.
type Favorite struct {
	UserID    uint `gorm:"primaryKey"`
	RecipeID  uint `gorm:"primaryKey"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
