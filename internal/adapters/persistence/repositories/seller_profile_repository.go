package repositories

import (
	"context"

	"shoplane/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// sellerProfileRepository implements SellerProfileRepository interface
type sellerProfileRepository struct {
	db *gorm.DB
}

// NewSellerProfileRepository creates a new seller profile repository
func NewSellerProfileRepository(db *gorm.DB) SellerProfileRepository {
	return &sellerProfileRepository{db: db}
}

// GetByUserID gets a seller profile by user ID
func (r *sellerProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save creates or updates a seller profile
func (r *sellerProfileRepository) Save(ctx context.Context, profile *models.SellerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
