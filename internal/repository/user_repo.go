package repository

import (
	"errors"

	"foodshare/backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository persists users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A username or email collision, including one
// lost to a concurrent registration, is reported as ErrAlreadyExists.
func (r *UserRepository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByLogin resolves a user by username or email.
func (r *UserRepository) GetByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns a page of users ordered by username with the total count.
func (r *UserRepository) List(page, limit int) ([]models.User, int64, error) {
	var totalItems int64
	if err := r.db.Model(&models.User{}).Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	offset := (page - 1) * limit
	err := r.db.Order("username ASC").Offset(offset).Limit(limit).Find(&users).Error
	return users, totalItems, err
}

func (r *UserRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// UpdateAvatar stores the new avatar reference; an empty ref clears it.
func (r *UserRepository) UpdateAvatar(id uint, avatarRef string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("avatar_ref", avatarRef).Error
}
