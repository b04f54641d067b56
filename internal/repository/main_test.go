package repository

import (
	"fmt"
	"testing"

	"foodshare/backend/internal/database"
	"foodshare/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	// A pooled second connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return &user
}

func seedIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(&ingredient).Error; err != nil {
		t.Fatalf("seed ingredient %s: %v", name, err)
	}
	return &ingredient
}

func seedRecipe(t *testing.T, db *gorm.DB, authorID uint, name string, lines []IngredientLine) *models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        "test recipe",
		CookingTime: 30,
	}
	if err := NewRecipeRepository(db).Create(&recipe, lines); err != nil {
		t.Fatalf("seed recipe %s: %v", name, err)
	}
	return &recipe
}
