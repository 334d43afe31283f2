package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// User represents users table
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Email         string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password      string         `gorm:"size:255;not null" json:"-"`
	Role          string         `gorm:"size:20;default:'buyer'" json:"role"`
	Phone         string         `gorm:"size:30" json:"phone,omitempty"`
	IsVerified    bool           `gorm:"default:false" json:"is_verified"`
	SellerRequest bool           `gorm:"default:false" json:"seller_request"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Phone         string    `json:"phone,omitempty"`
	IsVerified    bool      `json:"is_verified"`
	SellerRequest bool      `json:"seller_request"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Phone:         u.Phone,
		IsVerified:    u.IsVerified,
		SellerRequest: u.SellerRequest,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
	}
}

// SellerProfile represents seller_profiles table
type SellerProfile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	DocumentURL string    `gorm:"size:500" json:"document_url,omitempty"`
	BankAccount string    `gorm:"size:50" json:"bank_account,omitempty"`
	BankName    string    `gorm:"size:100" json:"bank_name,omitempty"`
	Wallet      string    `gorm:"size:100" json:"wallet,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}

func (SellerProfile) TableName() string {
	return "seller_profiles"
}

// Product represents products table
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SellerID    uint           `gorm:"index;not null" json:"seller_id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string         `gorm:"size:500" json:"image_url"`
	Stock       int            `gorm:"default:0" json:"stock"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Seller      User           `gorm:"foreignKey:SellerID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProductResponse DTO
type ProductResponse struct {
	ID          uint      `json:"id"`
	SellerID    uint      `json:"seller_id"`
	SellerName  string    `json:"seller_name,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Product) ToResponse() *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		SellerName:  p.Seller.Name,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
}

// Order represents orders table
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Number        string      `gorm:"uniqueIndex;size:40;not null" json:"number"`
	UserID        uint        `gorm:"index;not null" json:"user_id"`
	CustomerName  string      `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string      `gorm:"size:100;not null" json:"customer_email"`
	Address       string      `gorm:"size:500" json:"address,omitempty"`
	Phone         string      `gorm:"size:30" json:"phone,omitempty"`
	Total         float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        string      `gorm:"size:20;default:'pending';index" json:"status"`
	ChargeID      string      `gorm:"size:60" json:"charge_id,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	User          User        `gorm:"foreignKey:UserID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents order_items table. Name and price are snapshots
// taken at checkout so later product edits don't rewrite order history.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index;not null" json:"order_id"`
	ProductID   uint    `gorm:"index;not null" json:"product_id"`
	ProductName string  `gorm:"size:200;not null" json:"product_name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// Todo represents todos table
type Todo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (Todo) TableName() string {
	return "todos"
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&SellerProfile{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Todo{},
	)
}
