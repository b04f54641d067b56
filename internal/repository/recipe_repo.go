package repository

import (
	"errors"

	"foodshare/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IngredientLine is one submitted composition line: which ingredient, how much.
type IngredientLine struct {
	IngredientID uint
	Amount       int
}

// RecipeFilter narrows a recipe listing. Zero values mean "no filter".
type RecipeFilter struct {
	AuthorID    uint
	FavoritedBy uint // only recipes favorited by this user
	InCartOf    uint // only recipes in this user's shopping cart
}

// RecipeRepository persists recipes and their ingredient compositions.
type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create stores a new recipe together with its composition in one
// transaction. Either the recipe and all its lines become visible, or
// nothing does.
func (r *RecipeRepository) Create(recipe *models.Recipe, lines []IngredientLine) error {
	if recipe.CookingTime < models.MinCookingTime || recipe.CookingTime > models.MaxCookingTime {
		return ErrCookingTimeOutOfRange
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return replaceIngredients(tx, recipe.ID, lines)
	})
}

// Update saves the recipe's own fields and replaces its full composition
// atomically: prior lines are discarded and the submitted set takes their
// place. A concurrent reader sees either the old composition or the new one,
// never a mix.
func (r *RecipeRepository) Update(recipe *models.Recipe, lines []IngredientLine) error {
	if recipe.CookingTime < models.MinCookingTime || recipe.CookingTime > models.MaxCookingTime {
		return ErrCookingTimeOutOfRange
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		return replaceIngredients(tx, recipe.ID, lines)
	})
}

// SetIngredients replaces a recipe's composition without touching the recipe
// row itself.
func (r *RecipeRepository) SetIngredients(recipeID uint, lines []IngredientLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceIngredients(tx, recipeID, lines)
	})
}

// replaceIngredients validates the submitted lines and swaps them in for the
// recipe's current ones. Validation happens before any write so a rejected
// submission leaves the stored composition untouched.
func replaceIngredients(tx *gorm.DB, recipeID uint, lines []IngredientLine) error {
	if len(lines) == 0 {
		return ErrEmptyIngredients
	}

	seen := make(map[uint]struct{}, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		if line.Amount < models.MinIngredientAmount || line.Amount > models.MaxIngredientAmount {
			return ErrAmountOutOfRange
		}
		if _, dup := seen[line.IngredientID]; dup {
			return ErrDuplicateIngredient
		}
		seen[line.IngredientID] = struct{}{}
		ids = append(ids, line.IngredientID)
	}

	var known int64
	if err := tx.Model(&models.Ingredient{}).Where("id IN ?", ids).Count(&known).Error; err != nil {
		return err
	}
	if known != int64(len(ids)) {
		return ErrUnknownIngredient
	}

	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}

	rows := make([]models.RecipeIngredient, len(lines))
	for i, line := range lines {
		rows[i] = models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: line.IngredientID,
			Amount:       line.Amount,
		}
	}
	return tx.Create(&rows).Error
}

// GetByID loads a recipe with its author.
func (r *RecipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.Preload("Author").First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Lines returns a recipe's composition with ingredient data attached,
// ordered by ingredient name.
func (r *RecipeRepository) Lines(recipeID uint) ([]models.RecipeIngredient, error) {
	var lines []models.RecipeIngredient
	err := r.db.
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("ingredients.name ASC").
		Preload("Ingredient").
		Find(&lines).Error
	return lines, err
}

// List returns a page of recipes, newest first, with the total count before
// pagination.
func (r *RecipeRepository) List(filter RecipeFilter, page, limit int) ([]models.Recipe, int64, error) {
	query := r.db.Model(&models.Recipe{})

	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if filter.FavoritedBy != 0 {
		query = query.Where("recipes.id IN (?)",
			r.db.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", filter.FavoritedBy))
	}
	if filter.InCartOf != 0 {
		query = query.Where("recipes.id IN (?)",
			r.db.Model(&models.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", filter.InCartOf))
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	offset := (page - 1) * limit
	err := query.Preload("Author").Order("recipes.id DESC").Offset(offset).Limit(limit).Find(&recipes).Error
	return recipes, totalItems, err
}

// RecentByAuthor returns the author's newest recipes, truncated to limit
// when limit > 0.
func (r *RecipeRepository) RecentByAuthor(authorID uint, limit int) ([]models.Recipe, error) {
	query := r.db.Where("author_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var recipes []models.Recipe
	err := query.Find(&recipes).Error
	return recipes, err
}

// CountByAuthor returns the author's total recipe count, unaffected by any
// listing limit.
func (r *RecipeRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// Delete removes a recipe and cascades to its composition lines and every
// favorite/cart edge referencing it, all in one transaction.
func (r *RecipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.ShoppingCart{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
