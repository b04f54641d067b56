package repository

import (
	"errors"

	"foodshare/backend/internal/models"

	"gorm.io/gorm"
)

// IngredientRepository persists the flat ingredient catalog.
type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List returns ingredients ordered by name, optionally narrowed to names
// starting with the given prefix.
func (r *IngredientRepository) List(namePrefix string) ([]models.Ingredient, error) {
	query := r.db.Model(&models.Ingredient{})
	if namePrefix != "" {
		query = query.Where("name LIKE ?", namePrefix+"%")
	}
	var ingredients []models.Ingredient
	err := query.Order("name ASC").Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepository) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *IngredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func (r *IngredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *IngredientRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
