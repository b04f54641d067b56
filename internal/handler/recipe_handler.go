package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"foodshare/backend/internal/auth"
	"foodshare/backend/internal/media"
	"foodshare/backend/internal/models"
	"foodshare/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RecipeIngredientInput is one composition line of a recipe submission.
type RecipeIngredientInput struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"required"`
}

// RecipeInput defines the structure for creating or updating a recipe. The
// image is a base64 data URI; on update an empty image keeps the stored one.
type RecipeInput struct {
	Name        string                  `json:"name" binding:"required"`
	Image       string                  `json:"image"`
	Text        string                  `json:"text" binding:"required"`
	CookingTime int                     `json:"cooking_time" binding:"required"`
	Ingredients []RecipeIngredientInput `json:"ingredients"`
}

// RecipeIngredientResponse is one composition line with ingredient data.
type RecipeIngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse defines the full recipe representation.
type RecipeResponse struct {
	ID               uint                       `json:"id"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

// RecipeMinifiedResponse is the short recipe form used in edge responses
// and subscription listings.
type RecipeMinifiedResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func newRecipeMinifiedResponse(recipe models.Recipe) RecipeMinifiedResponse {
	return RecipeMinifiedResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.ImageRef,
		CookingTime: recipe.CookingTime,
	}
}

// PaginatedRecipeResponse defines the structure for a paginated list of recipes.
type PaginatedRecipeResponse struct {
	Data []RecipeResponse `json:"data"`
	Meta PaginationMeta   `json:"meta"`
}

// endregion

// RecipeHandler serves recipe CRUD and listings.
type RecipeHandler struct {
	recipes      *repository.RecipeRepository
	interactions *repository.InteractionRepository
	follows      *repository.FollowRepository
	images       *media.Storage
}

func NewRecipeHandler(recipes *repository.RecipeRepository, interactions *repository.InteractionRepository, follows *repository.FollowRepository, images *media.Storage) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, interactions: interactions, follows: follows, images: images}
}

func (h *RecipeHandler) newRecipeResponse(recipe models.Recipe, viewerID uint, favorited, inCart bool) (RecipeResponse, error) {
	author, err := newUserResponse(h.follows, recipe.Author, viewerID)
	if err != nil {
		return RecipeResponse{}, err
	}

	lines, err := h.recipes.Lines(recipe.ID)
	if err != nil {
		return RecipeResponse{}, err
	}
	lineResponses := make([]RecipeIngredientResponse, 0, len(lines))
	for _, line := range lines {
		lineResponses = append(lineResponses, RecipeIngredientResponse{
			ID:              line.IngredientID,
			Name:            line.Ingredient.Name,
			MeasurementUnit: line.Ingredient.MeasurementUnit,
			Amount:          line.Amount,
		})
	}

	return RecipeResponse{
		ID:               recipe.ID,
		Author:           author,
		Ingredients:      lineResponses,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             recipe.Name,
		Image:            recipe.ImageRef,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}, nil
}

func toIngredientLines(inputs []RecipeIngredientInput) []repository.IngredientLine {
	lines := make([]repository.IngredientLine, 0, len(inputs))
	for _, input := range inputs {
		lines = append(lines, repository.IngredientLine{IngredientID: input.ID, Amount: input.Amount})
	}
	return lines
}

// ListRecipes godoc
// @Summary      List recipes
// @Description  Retrieves a paginated list of recipes, newest first, with optional filtering by author, favorites and shopping cart.
// @Tags         recipes
// @Produce      json
// @Param        author              query int  false "Filter by author ID"
// @Param        is_favorited        query bool false "Only recipes the viewer favorited"
// @Param        is_in_shopping_cart query bool false "Only recipes in the viewer's cart"
// @Param        page                query int  false "Page number" default(1)
// @Param        limit               query int  false "Items per page" default(10)
// @Success      200 {object} PaginatedRecipeResponse
// @Router       /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	viewerID := auth.ViewerID(c)
	page, limit := pageParams(c)

	var filter repository.RecipeFilter
	if authorStr := c.Query("author"); authorStr != "" {
		if authorID, err := strconv.ParseUint(authorStr, 10, 32); err == nil {
			filter.AuthorID = uint(authorID)
		}
	}
	// The membership filters only mean something for an authenticated viewer.
	if favorited, _ := strconv.ParseBool(c.Query("is_favorited")); favorited && viewerID != 0 {
		filter.FavoritedBy = viewerID
	}
	if inCart, _ := strconv.ParseBool(c.Query("is_in_shopping_cart")); inCart && viewerID != 0 {
		filter.InCartOf = viewerID
	}

	recipes, totalItems, err := h.recipes.List(filter, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	recipeIDs := make([]uint, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
	}
	favoriteSet, err := h.interactions.FavoriteSet(viewerID, recipeIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}
	cartSet, err := h.interactions.CartSet(viewerID, recipeIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	responses := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response, err := h.newRecipeResponse(recipe, viewerID, favoriteSet[recipe.ID], cartSet[recipe.ID])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
			return
		}
		responses = append(responses, response)
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(responses, totalItems, page, limit))
}

// CreateRecipe godoc
// @Summary      Create a recipe
// @Description  Creates a recipe with its ingredient composition in one transaction.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RecipeInput true "Recipe Info"
// @Success      201  {object}  RecipeResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	viewerID := auth.ViewerID(c)

	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}

	imageRef, err := h.images.SaveBase64("recipes", input.Image)
	if err != nil {
		if errors.Is(err, media.ErrInvalidImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	recipe := models.Recipe{
		AuthorID:    viewerID,
		Name:        input.Name,
		ImageRef:    imageRef,
		Text:        input.Text,
		CookingTime: input.CookingTime,
	}
	if err := h.recipes.Create(&recipe, toIngredientLines(input.Ingredients)); err != nil {
		_ = h.images.Remove(imageRef)
		respondRepositoryError(c, err)
		return
	}

	created, err := h.recipes.GetByID(recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	response, err := h.newRecipeResponse(*created, viewerID, false, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// GetRecipeByID godoc
// @Summary      Get a recipe
// @Description  Retrieves a recipe with its composition and the viewer's favorite/cart state.
// @Tags         recipes
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Success      200 {object} RecipeResponse
// @Failure      404 {object} ErrorResponse "Recipe not found"
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	viewerID := auth.ViewerID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipes.GetByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	favorited, err := h.interactions.IsFavorited(viewerID, recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	inCart, err := h.interactions.IsInCart(viewerID, recipe.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}

	response, err := h.newRecipeResponse(*recipe, viewerID, favorited, inCart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// UpdateRecipe godoc
// @Summary      Update a recipe
// @Description  Updates a recipe and replaces its full composition. Only the author may update.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int         true  "Recipe ID"
// @Param        input body      RecipeInput true  "New Recipe Info"
// @Success      200   {object}  RecipeResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Not the author"
// @Failure      404   {object}  ErrorResponse "Recipe not found"
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	viewerID := auth.ViewerID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipes.GetByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}
	if recipe.AuthorID != viewerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can modify this recipe"})
		return
	}

	var input RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oldImageRef := ""
	if input.Image != "" {
		imageRef, err := h.images.SaveBase64("recipes", input.Image)
		if err != nil {
			if errors.Is(err, media.ErrInvalidImage) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		oldImageRef = recipe.ImageRef
		recipe.ImageRef = imageRef
	}

	recipe.Name = input.Name
	recipe.Text = input.Text
	recipe.CookingTime = input.CookingTime

	if err := h.recipes.Update(recipe, toIngredientLines(input.Ingredients)); err != nil {
		respondRepositoryError(c, err)
		return
	}
	_ = h.images.Remove(oldImageRef)

	favorited, _ := h.interactions.IsFavorited(viewerID, recipe.ID)
	inCart, _ := h.interactions.IsInCart(viewerID, recipe.ID)
	response, err := h.newRecipeResponse(*recipe, viewerID, favorited, inCart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// DeleteRecipe godoc
// @Summary      Delete a recipe
// @Description  Deletes a recipe and cascades to its composition lines and favorite/cart edges. Only the author may delete.
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Recipe ID"
// @Success      204 "No Content"
// @Failure      403 {object} ErrorResponse "Not the author"
// @Failure      404 {object} ErrorResponse "Recipe not found"
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	viewerID := auth.ViewerID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipes.GetByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}
	if recipe.AuthorID != viewerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can delete this recipe"})
		return
	}

	if err := h.recipes.Delete(recipe.ID); err != nil {
		respondRepositoryError(c, err)
		return
	}
	_ = h.images.Remove(recipe.ImageRef)

	c.Status(http.StatusNoContent)
}

// GetRecipeLink godoc
// @Summary      Get a recipe link
// @Description  Returns a stable link to the recipe.
// @Tags         recipes
// @Produce      json
// @Param        id path int true "Recipe ID"
// @Success      200 {object} map[string]string "{"short-link": "..."}"
// @Failure      404 {object} ErrorResponse "Recipe not found"
// @Router       /recipes/{id}/get-link [get]
func (h *RecipeHandler) GetRecipeLink(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.recipes.GetByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	link := fmt.Sprintf("%s://%s/api/v1/recipes/%d", scheme, c.Request.Host, recipe.ID)
	c.JSON(http.StatusOK, gin.H{"short-link": link})
}
