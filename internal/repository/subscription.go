package repository

import (
	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
)

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// Ensure SubscriptionRepository implements SubscriptionRepositoryInterface
var _ SubscriptionRepositoryInterface = (*SubscriptionRepository)(nil)

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create stores a new subscription
func (r *SubscriptionRepository) Create(subscription *models.Subscription) error {
	return r.db.Omit("User", "Author").Create(subscription).Error
}

// Delete removes the subscription of userID to authorID and reports whether one existed
func (r *SubscriptionRepository) Delete(userID, authorID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&models.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists reports whether userID is subscribed to authorID
func (r *SubscriptionRepository) Exists(userID, authorID uint) (bool, error) {
	return exists(r.db.Model(&models.Subscription{}).Where("user_id = ? AND author_id = ?", userID, authorID))
}

// GetAuthors returns the authors userID is subscribed to, ordered by username
func (r *SubscriptionRepository) GetAuthors(userID uint, limit, offset int) ([]models.User, int64, error) {
	var authors []models.User
	var total int64

	subscribed := r.db.Model(&models.Subscription{}).Select("author_id").Where("user_id = ?", userID)

	if err := r.db.Model(&models.User{}).Where("id IN (?)", subscribed).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("id IN (?)", subscribed).
		Order("username ASC").
		Limit(limit).
		Offset(offset).
		Find(&authors).Error; err != nil {
		return nil, 0, err
	}

	return authors, total, nil
}
