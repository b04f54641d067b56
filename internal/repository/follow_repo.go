package repository

import (
	"errors"

	"foodshare/backend/internal/models"

	"gorm.io/gorm"
)

// FollowRepository manages the directed follow graph between users.
type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Follow inserts a follower -> author edge. Self-follow is rejected here and
// by the table's CHECK constraint, so the invariant holds even for rows
// seeded outside the API.
func (r *FollowRepository) Follow(followerID, authorID uint) error {
	if followerID == authorID {
		return ErrSelfFollow
	}
	var author models.User
	if err := r.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	err := r.db.Create(&models.Follow{FollowerID: followerID, AuthorID: authorID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

func (r *FollowRepository) Unfollow(followerID, authorID uint) error {
	result := r.db.Where("follower_id = ? AND author_id = ?", followerID, authorID).Delete(&models.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFollowing reports whether follower subscribes to author. An
// unauthenticated viewer (followerID == 0) is always false.
func (r *FollowRepository) IsFollowing(followerID, authorID uint) (bool, error) {
	if followerID == 0 {
		return false, nil
	}
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).Count(&count).Error
	return count > 0, err
}

// FollowedAuthors returns the users this follower subscribes to, most recent
// subscription first.
func (r *FollowRepository) FollowedAuthors(followerID uint) ([]models.User, error) {
	var authors []models.User
	err := r.db.
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.follower_id = ?", followerID).
		Order("follows.created_at DESC").
		Find(&authors).Error
	return authors, err
}
