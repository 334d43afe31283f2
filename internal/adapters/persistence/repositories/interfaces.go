package repositories

import (
	"context"
	"time"

	"shoplane/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int, search string) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SellerProfileRepository defines seller profile repository interface
type SellerProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.SellerProfile, error)
	Save(ctx context.Context, profile *models.SellerProfile) error
}

// ProductRepository defines product repository interface
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	CreateBatch(ctx context.Context, products []*models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Product, int64, error)
	ListBySeller(ctx context.Context, sellerID uint, offset, limit int) ([]*models.Product, int64, error)
	DecrementStock(ctx context.Context, id uint, quantity int) error
	RestoreStock(ctx context.Context, id uint, quantity int) error
}

// OrderRepository defines order repository interface
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByIDAndUser(ctx context.Context, id, userID uint) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	CancelStalePending(ctx context.Context, olderThan time.Time) (int64, error)
	SellerStats(ctx context.Context, sellerID uint) (*SellerStats, error)
}

// SellerStats aggregates a seller's order figures for the dashboard
type SellerStats struct {
	ProductCount int64   `json:"product_count"`
	OrderCount   int64   `json:"order_count"`
	Revenue      float64 `json:"revenue"`
}

// TodoRepository defines todo repository interface
type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	ListByUser(ctx context.Context, userID uint) ([]*models.Todo, error)
	GetOwned(ctx context.Context, id, userID uint) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	DeleteOwned(ctx context.Context, id, userID uint) (bool, error)
}
