package repositories

import (
	"context"
	"time"

	"shoplane/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// orderRepository implements OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create creates a new order together with its items
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByIDAndUser gets an order only if it belongs to the given user.
// A foreign order is a plain record-not-found, same as an unknown one.
func (r *orderRepository) GetByIDAndUser(ctx context.Context, id, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser lists a user's orders newest first with pagination
func (r *orderRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Order, int64, error) {
	var orders []*models.Order
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// UpdateStatus updates an order's status
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CancelStalePending cancels pending orders created before olderThan
func (r *orderRepository) CancelStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ? AND created_at < ?", models.OrderStatusPending, olderThan).
		Update("status", models.OrderStatusCancelled)
	return result.RowsAffected, result.Error
}

// SellerStats aggregates product count, order count and revenue for a seller
func (r *orderRepository) SellerStats(ctx context.Context, sellerID uint) (*SellerStats, error) {
	stats := &SellerStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("seller_id = ?", sellerID).
		Count(&stats.ProductCount).Error; err != nil {
		return nil, err
	}

	row := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("COUNT(DISTINCT order_items.order_id), COALESCE(SUM(order_items.price * order_items.quantity), 0)").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("products.seller_id = ? AND orders.status <> ?", sellerID, models.OrderStatusCancelled).
		Row()
	if err := row.Scan(&stats.OrderCount, &stats.Revenue); err != nil {
		return nil, err
	}

	return stats, nil
}
