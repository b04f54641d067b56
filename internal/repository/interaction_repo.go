package repository

import (
	"errors"

	"foodshare/backend/internal/models"

	"gorm.io/gorm"
)

// InteractionRepository manages the two per-user recipe sets: favorites and
// the shopping cart. Both share the same edge shape but are independent.
// Uniqueness is enforced by the composite primary keys, so a duplicate-add
// race between two requests surfaces as a constraint violation and is
// remapped to ErrAlreadyExists here.
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

func (r *InteractionRepository) AddFavorite(userID, recipeID uint) error {
	err := r.db.Create(&models.Favorite{UserID: userID, RecipeID: recipeID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

func (r *InteractionRepository) RemoveFavorite(userID, recipeID uint) error {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFavorited reports membership for response shaping. An unauthenticated
// viewer (userID == 0) is always false without touching the database.
func (r *InteractionRepository) IsFavorited(userID, recipeID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

func (r *InteractionRepository) AddToCart(userID, recipeID uint) error {
	err := r.db.Create(&models.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

func (r *InteractionRepository) RemoveFromCart(userID, recipeID uint) error {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.ShoppingCart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InteractionRepository) IsInCart(userID, recipeID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var count int64
	err := r.db.Model(&models.ShoppingCart{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

// FavoriteSet returns which of the given recipes the user has favorited,
// letting list handlers shape responses with a single query.
func (r *InteractionRepository) FavoriteSet(userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return r.edgeSet(&models.Favorite{}, userID, recipeIDs)
}

// CartSet is FavoriteSet for the shopping cart.
func (r *InteractionRepository) CartSet(userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return r.edgeSet(&models.ShoppingCart{}, userID, recipeIDs)
}

func (r *InteractionRepository) edgeSet(model any, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return set, nil
	}
	var ids []uint
	err := r.db.Model(model).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
