package repository

import (
	"foodshare/backend/internal/models"

	"gorm.io/gorm"
)

// ShoppingListItem is one consolidated line of a user's shopping list: an
// ingredient, its unit, and the amount summed across every recipe in the
// cart. TotalAmount is 64-bit so large carts cannot silently overflow the
// per-line amount type.
type ShoppingListItem struct {
	Name            string
	MeasurementUnit string
	TotalAmount     int64
}

// ShoppingListRepository derives a consolidated ingredient report from a
// user's shopping-cart contents.
type ShoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Build resolves the recipes in the user's cart, groups their composition
// lines by ingredient and sums the amounts. The result is ordered by
// ingredient name ascending so the report is deterministic. An empty cart
// yields an empty (non-nil) slice, not an error.
func (r *ShoppingListRepository) Build(userID uint) ([]ShoppingListItem, error) {
	items := make([]ShoppingListItem, 0)
	err := r.db.Model(&models.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.id, ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC, ingredients.id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
