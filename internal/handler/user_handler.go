package handler

import (
	"errors"
	"net/http"
	"strconv"

	"foodshare/backend/internal/auth"
	"foodshare/backend/internal/media"
	"foodshare/backend/internal/models"
	"foodshare/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// UserResponse defines the structure for a user's profile.
type UserResponse struct {
	ID           uint   `json:"id" example:"1"`
	Email        string `json:"email" example:"test@example.com"`
	Username     string `json:"username" example:"testuser"`
	FirstName    string `json:"first_name" example:"Test"`
	LastName     string `json:"last_name" example:"User"`
	Avatar       string `json:"avatar"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// SetAvatarInput carries a base64-encoded avatar image.
type SetAvatarInput struct {
	Avatar string `json:"avatar" binding:"required"`
}

// PaginatedUserResponse defines the structure for a paginated list of users.
type PaginatedUserResponse struct {
	Data []UserResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// UserHandler serves user profiles and avatars.
type UserHandler struct {
	users   *repository.UserRepository
	follows *repository.FollowRepository
	images  *media.Storage
}

func NewUserHandler(users *repository.UserRepository, follows *repository.FollowRepository, images *media.Storage) *UserHandler {
	return &UserHandler{users: users, follows: follows, images: images}
}

// newUserResponse shapes a profile as seen by the viewer. is_subscribed is a
// direct membership query; for an unauthenticated viewer it is always false.
func newUserResponse(follows *repository.FollowRepository, user models.User, viewerID uint) (UserResponse, error) {
	subscribed, err := follows.IsFollowing(viewerID, user.ID)
	if err != nil {
		return UserResponse{}, err
	}
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Avatar:       user.AvatarRef,
		IsSubscribed: subscribed,
	}, nil
}

// ListUsers godoc
// @Summary      List users
// @Description  Retrieves a paginated list of users ordered by username.
// @Tags         users
// @Produce      json
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(10)
// @Success      200   {object}  PaginatedUserResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	viewerID := auth.ViewerID(c)
	page, limit := pageParams(c)

	users, totalItems, err := h.users.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response, err := newUserResponse(h.follows, user, viewerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
			return
		}
		responses = append(responses, response)
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(responses, totalItems, page, limit))
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	viewerID := auth.ViewerID(c)

	user, err := h.users.GetByID(viewerID)
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	response, err := newUserResponse(h.follows, *user, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build profile"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the profile for a specific user, including subscription state for the viewer.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	viewerID := auth.ViewerID(c)
	targetUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.users.GetByID(uint(targetUserID))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	response, err := newUserResponse(h.follows, *user, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build profile"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// SetAvatar godoc
// @Summary      Set avatar
// @Description  Stores a base64-encoded avatar image for the authenticated user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SetAvatarInput true "Avatar data URI"
// @Success      200  {object}  map[string]string "{"avatar": "users/..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/avatar [put]
func (h *UserHandler) SetAvatar(c *gin.Context) {
	viewerID := auth.ViewerID(c)

	var input SetAvatarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.GetByID(viewerID)
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	ref, err := h.images.SaveBase64("users", input.Avatar)
	if err != nil {
		if errors.Is(err, media.ErrInvalidImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
		return
	}

	if err := h.users.UpdateAvatar(user.ID, ref); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar"})
		return
	}
	// Best effort: the old file is orphaned otherwise.
	_ = h.images.Remove(user.AvatarRef)

	c.JSON(http.StatusOK, gin.H{"avatar": ref})
}

// DeleteAvatar godoc
// @Summary      Delete avatar
// @Description  Removes the authenticated user's avatar.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me/avatar [delete]
func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	viewerID := auth.ViewerID(c)

	user, err := h.users.GetByID(viewerID)
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	if err := h.users.UpdateAvatar(user.ID, ""); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar"})
		return
	}
	_ = h.images.Remove(user.AvatarRef)

	c.Status(http.StatusNoContent)
}
