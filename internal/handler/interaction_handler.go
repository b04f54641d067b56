package handler

import (
	"net/http"
	"strconv"

	"foodshare/backend/internal/auth"
	"foodshare/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// InteractionHandler serves the two per-user recipe sets: favorites and the
// shopping cart. Adding to either returns the minified recipe; removing
// returns no content.
type InteractionHandler struct {
	interactions *repository.InteractionRepository
	recipes      *repository.RecipeRepository
}

func NewInteractionHandler(interactions *repository.InteractionRepository, recipes *repository.RecipeRepository) *InteractionHandler {
	return &InteractionHandler{interactions: interactions, recipes: recipes}
}

// addEdge looks up the recipe, runs the membership insert and shapes the
// shared success/failure responses for both sets.
func (h *InteractionHandler) addEdge(c *gin.Context, add func(userID, recipeID uint) error) {
	viewerID := auth.ViewerID(c)
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipes.GetByID(uint(recipeID))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	if err := add(viewerID, recipe.ID); err != nil {
		respondRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRecipeMinifiedResponse(*recipe))
}

func (h *InteractionHandler) removeEdge(c *gin.Context, remove func(userID, recipeID uint) error) {
	viewerID := auth.ViewerID(c)
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if err := remove(viewerID, uint(recipeID)); err != nil {
		respondRepositoryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddFavorite godoc
// @Summary      Favorite a recipe
// @Description  Adds a recipe to the authenticated user's favorites.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Recipe ID"
// @Success      201 {object} RecipeMinifiedResponse
// @Failure      404 {object} ErrorResponse "Recipe not found"
// @Failure      409 {object} ErrorResponse "Already in favorites"
// @Router       /recipes/{id}/favorite [post]
func (h *InteractionHandler) AddFavorite(c *gin.Context) {
	h.addEdge(c, h.interactions.AddFavorite)
}

// RemoveFavorite godoc
// @Summary      Unfavorite a recipe
// @Description  Removes a recipe from the authenticated user's favorites.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Recipe ID"
// @Success      204 "No Content"
// @Failure      404 {object} ErrorResponse "Recipe not in favorites"
// @Router       /recipes/{id}/favorite [delete]
func (h *InteractionHandler) RemoveFavorite(c *gin.Context) {
	h.removeEdge(c, h.interactions.RemoveFavorite)
}

// AddToCart godoc
// @Summary      Add a recipe to the shopping cart
// @Description  Adds a recipe to the authenticated user's shopping cart.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Recipe ID"
// @Success      201 {object} RecipeMinifiedResponse
// @Failure      404 {object} ErrorResponse "Recipe not found"
// @Failure      409 {object} ErrorResponse "Already in shopping cart"
// @Router       /recipes/{id}/shopping_cart [post]
func (h *InteractionHandler) AddToCart(c *gin.Context) {
	h.addEdge(c, h.interactions.AddToCart)
}

// RemoveFromCart godoc
// @Summary      Remove a recipe from the shopping cart
// @Description  Removes a recipe from the authenticated user's shopping cart.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Recipe ID"
// @Success      204 "No Content"
// @Failure      404 {object} ErrorResponse "Recipe not in shopping cart"
// @Router       /recipes/{id}/shopping_cart [delete]
func (h *InteractionHandler) RemoveFromCart(c *gin.Context) {
	h.removeEdge(c, h.interactions.RemoveFromCart)
}
