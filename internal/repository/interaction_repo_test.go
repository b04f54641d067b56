package repository

import (
	"errors"
	"testing"
)

func TestFavoriteAddRemove(t *testing.T) {
	db := newTestDB(t)
	repo := NewInteractionRepository(db)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "flour", "g")
	recipe := seedRecipe(t, db, author.ID, "cake", []IngredientLine{{IngredientID: flour.ID, Amount: 100}})

	if err := repo.AddFavorite(user.ID, recipe.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := repo.AddFavorite(user.ID, recipe.ID); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second add error = %v, want ErrAlreadyExists", err)
	}

	favorited, err := repo.IsFavorited(user.ID, recipe.ID)
	if err != nil || !favorited {
		t.Errorf("IsFavorited = (%v, %v), want (true, nil)", favorited, err)
	}

	if err := repo.RemoveFavorite(user.ID, recipe.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := repo.RemoveFavorite(user.ID, recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove error = %v, want ErrNotFound", err)
	}
}

func TestCartAddRemove(t *testing.T) {
	db := newTestDB(t)
	repo := NewInteractionRepository(db)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "flour", "g")
	recipe := seedRecipe(t, db, author.ID, "cake", []IngredientLine{{IngredientID: flour.ID, Amount: 100}})

	if err := repo.AddToCart(user.ID, recipe.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := repo.AddToCart(user.ID, recipe.ID); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second add error = %v, want ErrAlreadyExists", err)
	}

	if err := repo.RemoveFromCart(user.ID, recipe.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := repo.RemoveFromCart(user.ID, recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove error = %v, want ErrNotFound", err)
	}
}

func TestFavoriteAndCartAreIndependent(t *testing.T) {
	db := newTestDB(t)
	repo := NewInteractionRepository(db)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "flour", "g")
	recipe := seedRecipe(t, db, author.ID, "cake", []IngredientLine{{IngredientID: flour.ID, Amount: 100}})

	if err := repo.AddFavorite(user.ID, recipe.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if err := repo.AddToCart(user.ID, recipe.ID); err != nil {
		t.Fatalf("add to cart after favorite: %v", err)
	}

	if err := repo.RemoveFavorite(user.ID, recipe.ID); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	inCart, err := repo.IsInCart(user.ID, recipe.ID)
	if err != nil || !inCart {
		t.Errorf("cart membership lost when favorite removed: (%v, %v)", inCart, err)
	}
}

func TestMembershipUnauthenticatedViewer(t *testing.T) {
	db := newTestDB(t)
	repo := NewInteractionRepository(db)
	author := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "flour", "g")
	recipe := seedRecipe(t, db, author.ID, "cake", []IngredientLine{{IngredientID: flour.ID, Amount: 100}})

	favorited, err := repo.IsFavorited(0, recipe.ID)
	if err != nil || favorited {
		t.Errorf("IsFavorited for anonymous = (%v, %v), want (false, nil)", favorited, err)
	}
	inCart, err := repo.IsInCart(0, recipe.ID)
	if err != nil || inCart {
		t.Errorf("IsInCart for anonymous = (%v, %v), want (false, nil)", inCart, err)
	}

	set, err := repo.FavoriteSet(0, []uint{recipe.ID})
	if err != nil || len(set) != 0 {
		t.Errorf("FavoriteSet for anonymous = (%v, %v), want empty", set, err)
	}
}

func TestEdgeSets(t *testing.T) {
	db := newTestDB(t)
	repo := NewInteractionRepository(db)
	user := seedUser(t, db, "alice")
	author := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "flour", "g")
	lines := []IngredientLine{{IngredientID: flour.ID, Amount: 100}}
	cake := seedRecipe(t, db, author.ID, "cake", lines)
	bread := seedRecipe(t, db, author.ID, "bread", lines)

	if err := repo.AddFavorite(user.ID, cake.ID); err != nil {
		t.Fatalf("add favorite: %v", err)
	}

	set, err := repo.FavoriteSet(user.ID, []uint{cake.ID, bread.ID})
	if err != nil {
		t.Fatalf("favorite set: %v", err)
	}
	if !set[cake.ID] || set[bread.ID] {
		t.Errorf("favorite set = %v, want only cake", set)
	}
}
