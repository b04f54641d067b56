package handler

import (
	"net/http"
	"strconv"

	"foodshare/backend/internal/auth"
	"foodshare/backend/internal/models"
	"foodshare/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// UserWithRecipesResponse extends a profile with the author's recipes and
// their total count. The recipes list may be truncated by recipes_limit; the
// count never is.
type UserWithRecipesResponse struct {
	UserResponse
	Recipes      []RecipeMinifiedResponse `json:"recipes"`
	RecipesCount int64                    `json:"recipes_count"`
}

// SubscriptionHandler serves the follow graph: subscribe, unsubscribe and
// the subscriptions listing.
type SubscriptionHandler struct {
	follows *repository.FollowRepository
	recipes *repository.RecipeRepository
	users   *repository.UserRepository
}

func NewSubscriptionHandler(follows *repository.FollowRepository, recipes *repository.RecipeRepository, users *repository.UserRepository) *SubscriptionHandler {
	return &SubscriptionHandler{follows: follows, recipes: recipes, users: users}
}

func (h *SubscriptionHandler) newUserWithRecipes(user models.User, viewerID uint, recipesLimit int) (UserWithRecipesResponse, error) {
	base, err := newUserResponse(h.follows, user, viewerID)
	if err != nil {
		return UserWithRecipesResponse{}, err
	}

	recipes, err := h.recipes.RecentByAuthor(user.ID, recipesLimit)
	if err != nil {
		return UserWithRecipesResponse{}, err
	}
	count, err := h.recipes.CountByAuthor(user.ID)
	if err != nil {
		return UserWithRecipesResponse{}, err
	}

	minified := make([]RecipeMinifiedResponse, 0, len(recipes))
	for _, recipe := range recipes {
		minified = append(minified, newRecipeMinifiedResponse(recipe))
	}

	return UserWithRecipesResponse{
		UserResponse: base,
		Recipes:      minified,
		RecipesCount: count,
	}, nil
}

// ListSubscriptions godoc
// @Summary      List subscriptions
// @Description  Retrieves the authors the authenticated user follows, each with their recipe count and most recent recipes.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        recipes_limit query int false "Max recipes per author"
// @Success      200  {array}   UserWithRecipesResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	viewerID := auth.ViewerID(c)

	recipesLimit := 0
	if limitStr := c.Query("recipes_limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			recipesLimit = parsed
		}
	}

	authors, err := h.follows.FollowedAuthors(viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
		return
	}

	responses := make([]UserWithRecipesResponse, 0, len(authors))
	for _, author := range authors {
		response, err := h.newUserWithRecipes(author, viewerID, recipesLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
			return
		}
		responses = append(responses, response)
	}

	c.JSON(http.StatusOK, responses)
}

// Subscribe godoc
// @Summary      Subscribe to an author
// @Description  Follows another user. Self-follow and duplicate follows are rejected.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Author ID"
// @Success      201  {object}  UserWithRecipesResponse
// @Failure      400  {object}  ErrorResponse "Cannot subscribe to yourself"
// @Failure      404  {object}  ErrorResponse "Author not found"
// @Failure      409  {object}  ErrorResponse "Already subscribed"
// @Router       /users/{id}/subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	viewerID := auth.ViewerID(c)
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
		return
	}

	if err := h.follows.Follow(viewerID, uint(authorID)); err != nil {
		respondRepositoryError(c, err)
		return
	}

	author, err := h.users.GetByID(uint(authorID))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}
	response, err := h.newUserWithRecipes(*author, viewerID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build profile"})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// Unsubscribe godoc
// @Summary      Unsubscribe from an author
// @Description  Removes an existing follow edge.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Author ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Not subscribed"
// @Router       /users/{id}/subscribe [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	viewerID := auth.ViewerID(c)
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
		return
	}

	if err := h.follows.Unfollow(viewerID, uint(authorID)); err != nil {
		respondRepositoryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
