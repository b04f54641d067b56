package repository

import (
	"testing"
)

func TestBuildShoppingListAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewShoppingListRepository(db)
	interactions := NewInteractionRepository(db)
	author := seedUser(t, db, "alice")
	shopper := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "flour", "g")
	sugar := seedIngredient(t, db, "sugar", "g")

	cake := seedRecipe(t, db, author.ID, "cake", []IngredientLine{
		{IngredientID: flour.ID, Amount: 200},
		{IngredientID: sugar.ID, Amount: 50},
	})
	bread := seedRecipe(t, db, author.ID, "bread", []IngredientLine{
		{IngredientID: flour.ID, Amount: 300},
	})

	for _, recipeID := range []uint{cake.ID, bread.ID} {
		if err := interactions.AddToCart(shopper.ID, recipeID); err != nil {
			t.Fatalf("add to cart: %v", err)
		}
	}

	items, err := repo.Build(shopper.ID)
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}

	want := []ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", TotalAmount: 500},
		{Name: "sugar", MeasurementUnit: "g", TotalAmount: 50},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %+v", len(want), len(items), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestBuildShoppingListEmptyCart(t *testing.T) {
	db := newTestDB(t)
	repo := NewShoppingListRepository(db)
	shopper := seedUser(t, db, "bob")

	items, err := repo.Build(shopper.ID)
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %+v", items)
	}
}

func TestBuildShoppingListScopedToUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewShoppingListRepository(db)
	interactions := NewInteractionRepository(db)
	author := seedUser(t, db, "alice")
	shopper := seedUser(t, db, "bob")
	other := seedUser(t, db, "carol")
	flour := seedIngredient(t, db, "flour", "g")
	salt := seedIngredient(t, db, "salt", "g")

	bread := seedRecipe(t, db, author.ID, "bread", []IngredientLine{
		{IngredientID: flour.ID, Amount: 300},
	})
	soup := seedRecipe(t, db, author.ID, "soup", []IngredientLine{
		{IngredientID: salt.ID, Amount: 5},
	})

	if err := interactions.AddToCart(shopper.ID, bread.ID); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if err := interactions.AddToCart(other.ID, soup.ID); err != nil {
		t.Fatalf("add to other cart: %v", err)
	}

	items, err := repo.Build(shopper.ID)
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "flour" || items[0].TotalAmount != 300 {
		t.Fatalf("expected only bob's flour, got %+v", items)
	}
}

func TestBuildShoppingListOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewShoppingListRepository(db)
	interactions := NewInteractionRepository(db)
	author := seedUser(t, db, "alice")
	shopper := seedUser(t, db, "bob")
	sugar := seedIngredient(t, db, "sugar", "g")
	butter := seedIngredient(t, db, "butter", "g")
	apple := seedIngredient(t, db, "apple", "pcs")

	pie := seedRecipe(t, db, author.ID, "pie", []IngredientLine{
		{IngredientID: sugar.ID, Amount: 80},
		{IngredientID: butter.ID, Amount: 150},
		{IngredientID: apple.ID, Amount: 4},
	})
	if err := interactions.AddToCart(shopper.ID, pie.ID); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	items, err := repo.Build(shopper.ID)
	if err != nil {
		t.Fatalf("build shopping list: %v", err)
	}
	wantOrder := []string{"apple", "butter", "sugar"}
	if len(items) != len(wantOrder) {
		t.Fatalf("expected %d items, got %d", len(wantOrder), len(items))
	}
	for i, name := range wantOrder {
		if items[i].Name != name {
			t.Errorf("item %d = %s, want %s", i, items[i].Name, name)
		}
	}
}
