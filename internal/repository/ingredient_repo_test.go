package repository

import (
	"errors"
	"testing"
)

func TestIngredientListPrefixFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewIngredientRepository(db)
	seedIngredient(t, db, "sugar", "g")
	seedIngredient(t, db, "salt", "g")
	seedIngredient(t, db, "flour", "g")

	all, err := repo.List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 ingredients, got %d", len(all))
	}
	if all[0].Name != "flour" {
		t.Errorf("expected name ordering, first = %s", all[0].Name)
	}

	salty, err := repo.List("sa")
	if err != nil {
		t.Fatalf("list with prefix: %v", err)
	}
	if len(salty) != 1 || salty[0].Name != "salt" {
		t.Errorf("prefix filter = %+v, want only salt", salty)
	}
}

func TestIngredientDuplicateNamesAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := NewIngredientRepository(db)
	seedIngredient(t, db, "pepper", "g")
	seedIngredient(t, db, "pepper", "pcs")

	all, err := repo.List("pepper")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected both pepper rows, got %d", len(all))
	}
}

func TestIngredientDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewIngredientRepository(db)
	pepper := seedIngredient(t, db, "pepper", "g")

	if err := repo.Delete(pepper.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(pepper.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(pepper.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
