package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/adapters/persistence/repositories"
	"shoplane/internal/core/domain"
	"shoplane/internal/pkg/mq"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order errors
var (
	ErrProductUnavailable = errors.New("product unavailable or out of stock")
	ErrTotalMismatch      = errors.New("order total does not match item prices")
)

// Currency for charges; amounts are converted to satang for the gateway.
const orderCurrency = "thb"

// OrderService handles checkout and order history
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	payments    *PaymentService
	events      *mq.Publisher
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	payments *PaymentService,
	events *mq.Publisher,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		payments:    payments,
		events:      events,
	}
}

// CustomerInfo is the checkout contact snapshot stored on the order
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CheckoutItem is one cart line submitted at checkout
type CheckoutItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CheckoutInput represents checkout input. Total is the client's own sum
// and is verified against catalog prices, never trusted.
type CheckoutInput struct {
	Customer  CustomerInfo   `json:"customer"`
	Items     []CheckoutItem `json:"items"`
	Total     float64        `json:"total"`
	CardToken string         `json:"card_token"`
}

// Checkout creates an order from cart items, optionally charging a card
func (s *OrderService) Checkout(ctx context.Context, userID uint, input *CheckoutInput) (*models.Order, error) {
	if strings.TrimSpace(input.Customer.Name) == "" || strings.TrimSpace(input.Customer.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Snapshot names and prices from the catalog; client-sent figures
	// only ever narrow what we accept.
	var orderItems []models.OrderItem
	var total float64
	for _, item := range input.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductUnavailable
			}
			return nil, err
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
		})
		total += product.Price * float64(item.Quantity)
	}

	if input.Total > 0 && math.Abs(input.Total-total) > 0.01 {
		return nil, ErrTotalMismatch
	}

	// Reserve stock up front; roll back on any later failure.
	reserved := make([]CheckoutItem, 0, len(input.Items))
	restore := func() {
		for _, item := range reserved {
			if err := s.productRepo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
				log.Printf("❌ Failed to restore stock for product %d: %v", item.ProductID, err)
			}
		}
	}
	for _, item := range input.Items {
		if err := s.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			restore()
			if errors.Is(err, repositories.ErrInsufficientStock) {
				return nil, ErrProductUnavailable
			}
			return nil, err
		}
		reserved = append(reserved, item)
	}

	order := &models.Order{
		Number:        uuid.NewString(),
		UserID:        userID,
		CustomerName:  strings.TrimSpace(input.Customer.Name),
		CustomerEmail: strings.TrimSpace(input.Customer.Email),
		Address:       input.Customer.Address,
		Phone:         input.Customer.Phone,
		Total:         total,
		Status:        models.OrderStatusPending,
		Items:         orderItems,
	}

	if input.CardToken != "" {
		// A payment instruction must never be dropped: without a
		// configured gateway the checkout is refused, not downgraded
		// to an unpaid pending order.
		if !s.payments.Enabled() {
			restore()
			return nil, ErrPaymentDisabled
		}
		amount := int64(math.Round(total * 100))
		charge, err := s.payments.ChargeCard(ctx, order.Number, amount, orderCurrency, input.CardToken)
		if err != nil {
			restore()
			return nil, err
		}
		order.ChargeID = charge.ID
		if string(charge.Status) == "successful" {
			order.Status = models.OrderStatusPaid
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		restore()
		if order.ChargeID != "" {
			// The charge went through but the order did not; keep the
			// pair in the log for manual reconciliation.
			log.Printf("❌ Orphaned charge %s for order %s (user %d): order create failed: %v",
				order.ChargeID, order.Number, userID, err)
		}
		return nil, err
	}

	_ = s.events.PublishJSON(ctx, "order.created", map[string]any{
		"order_number": order.Number,
		"user_id":      order.UserID,
		"total":        order.Total,
		"status":       order.Status,
	})

	log.Printf("✅ Order %s created for user %d (total: %.2f)", order.Number, userID, total)
	return order, nil
}

// ListByUser lists the requester's orders newest first
func (s *OrderService) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Order, int64, error) {
	return s.orderRepo.ListByUser(ctx, userID, offset, limit)
}

// Get returns an order only if it belongs to the requester. A foreign
// order is reported as not found, identical to an unknown one.
func (s *OrderService) Get(ctx context.Context, userID, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}
