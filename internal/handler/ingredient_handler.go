package handler

import (
	"net/http"
	"strconv"

	"foodshare/backend/internal/models"
	"foodshare/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type IngredientInput struct {
	Name            string `json:"name" binding:"required"`
	MeasurementUnit string `json:"measurement_unit" binding:"required"`
}

type IngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func newIngredientResponse(ingredient models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

// IngredientHandler serves the ingredient catalog: public lookups plus
// admin-only maintenance.
type IngredientHandler struct {
	ingredients *repository.IngredientRepository
}

func NewIngredientHandler(ingredients *repository.IngredientRepository) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// ListIngredients godoc
// @Summary      List ingredients
// @Description  Retrieves ingredients ordered by name, optionally filtered by name prefix.
// @Tags         ingredients
// @Produce      json
// @Param        name query string false "Name prefix filter"
// @Success      200  {array}   IngredientResponse
// @Router       /ingredients [get]
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.List(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredients"})
		return
	}

	responses := make([]IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		responses = append(responses, newIngredientResponse(ingredient))
	}
	c.JSON(http.StatusOK, responses)
}

// GetIngredientByID godoc
// @Summary      Get an ingredient
// @Description  Retrieves a single ingredient by ID.
// @Tags         ingredients
// @Produce      json
// @Param        id   path      int  true  "Ingredient ID"
// @Success      200  {object}  IngredientResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Ingredient not found"
// @Router       /ingredients/{id} [get]
func (h *IngredientHandler) GetIngredientByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	ingredient, err := h.ingredients.GetByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, newIngredientResponse(*ingredient))
}

// CreateIngredient godoc
// @Summary      Create an ingredient
// @Description  Adds a new ingredient to the catalog.
// @Tags         admin-ingredients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body IngredientInput true "Ingredient Info"
// @Success      201  {object}  IngredientResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/ingredients [post]
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient := models.Ingredient{Name: input.Name, MeasurementUnit: input.MeasurementUnit}
	if err := h.ingredients.Create(&ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}

	c.JSON(http.StatusCreated, newIngredientResponse(ingredient))
}

// UpdateIngredient godoc
// @Summary      Update an ingredient
// @Description  Updates an existing ingredient's name and unit.
// @Tags         admin-ingredients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Ingredient ID"
// @Param        input body IngredientInput true "New Ingredient Info"
// @Success      200  {object}  IngredientResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Ingredient not found"
// @Router       /admin/ingredients/{id} [put]
func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredients.GetByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	ingredient.Name = input.Name
	ingredient.MeasurementUnit = input.MeasurementUnit
	if err := h.ingredients.Update(ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
		return
	}
	c.JSON(http.StatusOK, newIngredientResponse(*ingredient))
}

// DeleteIngredient godoc
// @Summary      Delete an ingredient
// @Description  Removes an ingredient from the catalog.
// @Tags         admin-ingredients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Ingredient ID"
// @Success      200  {object}  map[string]string "{"message": "Ingredient deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Ingredient not found"
// @Router       /admin/ingredients/{id} [delete]
func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := h.ingredients.Delete(uint(id)); err != nil {
		respondRepositoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted"})
}
