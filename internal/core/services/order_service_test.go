package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/adapters/persistence/repositories"
	"shoplane/internal/core/domain"

	"gorm.io/gorm"
)

// fakeProductRepository is an in-memory ProductRepository for service tests
type fakeProductRepository struct {
	products map[uint]*models.Product
	nextID   uint
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[uint]*models.Product), nextID: 1}
}

func (r *fakeProductRepository) Create(_ context.Context, product *models.Product) error {
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepository) CreateBatch(ctx context.Context, products []*models.Product) error {
	for _, product := range products {
		if err := r.Create(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeProductRepository) GetByID(_ context.Context, id uint) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (r *fakeProductRepository) Update(_ context.Context, product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepository) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepository) List(_ context.Context, offset, limit int) ([]*models.Product, int64, error) {
	out := make([]*models.Product, 0, len(r.products))
	for _, product := range r.products {
		out = append(out, product)
	}
	return out, int64(len(r.products)), nil
}

func (r *fakeProductRepository) ListBySeller(_ context.Context, sellerID uint, offset, limit int) ([]*models.Product, int64, error) {
	var out []*models.Product
	for _, product := range r.products {
		if product.SellerID == sellerID {
			out = append(out, product)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepository) DecrementStock(_ context.Context, id uint, quantity int) error {
	product, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if product.Stock < quantity {
		return repositories.ErrInsufficientStock
	}
	product.Stock -= quantity
	return nil
}

func (r *fakeProductRepository) RestoreStock(_ context.Context, id uint, quantity int) error {
	product, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	product.Stock += quantity
	return nil
}

// fakeOrderRepository is an in-memory OrderRepository for service tests
type fakeOrderRepository struct {
	orders map[uint]*models.Order
	nextID uint
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[uint]*models.Order), nextID: 1}
}

func (r *fakeOrderRepository) Create(_ context.Context, order *models.Order) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepository) GetByIDAndUser(_ context.Context, id, userID uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok || order.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeOrderRepository) ListByUser(_ context.Context, userID uint, offset, limit int) ([]*models.Order, int64, error) {
	var out []*models.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepository) UpdateStatus(_ context.Context, id uint, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepository) CancelStalePending(_ context.Context, olderThan time.Time) (int64, error) {
	var n int64
	for _, order := range r.orders {
		if order.Status == models.OrderStatusPending && order.CreatedAt.Before(olderThan) {
			order.Status = models.OrderStatusCancelled
			n++
		}
	}
	return n, nil
}

func (r *fakeOrderRepository) SellerStats(_ context.Context, sellerID uint) (*repositories.SellerStats, error) {
	return &repositories.SellerStats{}, nil
}

func newTestOrderService(t *testing.T, productRepo *fakeProductRepository, orderRepo repositories.OrderRepository) *OrderService {
	t.Helper()
	payments, err := NewPaymentService(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build payment service: %v", err)
	}
	return NewOrderService(orderRepo, productRepo, payments, nil)
}

func seedProduct(t *testing.T, repo *fakeProductRepository, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: price, Stock: stock, SellerID: 99}
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func validCustomer() CustomerInfo {
	return CustomerInfo{
		Name:    "Grace",
		Email:   "grace@example.com",
		Address: "1 Main St",
		Phone:   "0812345678",
	}
}

func TestCheckoutComputesTotalFromCatalog(t *testing.T) {
	productRepo := newFakeProductRepository()
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(t, productRepo, orderRepo)

	mug := seedProduct(t, productRepo, "Mug", 120.50, 10)
	shirt := seedProduct(t, productRepo, "Shirt", 350, 5)

	order, err := svc.Checkout(context.Background(), 1, &CheckoutInput{
		Customer: validCustomer(),
		Items: []CheckoutItem{
			{ProductID: mug.ID, Quantity: 2},
			{ProductID: shirt.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	want := 120.50*2 + 350
	if order.Total != want {
		t.Errorf("expected total %.2f, got %.2f", want, order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected pending status without payment, got %s", order.Status)
	}
	if order.Number == "" {
		t.Error("expected an order number")
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	if order.Items[0].ProductName != "Mug" || order.Items[0].Price != 120.50 {
		t.Errorf("expected item snapshot from catalog, got %+v", order.Items[0])
	}
	if mug.Stock != 8 {
		t.Errorf("expected stock decremented to 8, got %d", mug.Stock)
	}
}

func TestCheckoutCardTokenRequiresGateway(t *testing.T) {
	productRepo := newFakeProductRepository()
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(t, productRepo, orderRepo)

	mug := seedProduct(t, productRepo, "Mug", 100, 10)

	// A card token against an unconfigured gateway must refuse the
	// checkout, never persist an unpaid order with the charge dropped.
	_, err := svc.Checkout(context.Background(), 1, &CheckoutInput{
		Customer:  validCustomer(),
		Items:     []CheckoutItem{{ProductID: mug.ID, Quantity: 2}},
		CardToken: "tokn_test_123",
	})
	if !errors.Is(err, ErrPaymentDisabled) {
		t.Fatalf("expected ErrPaymentDisabled, got %v", err)
	}
	if mug.Stock != 10 {
		t.Errorf("expected stock restored to 10, got %d", mug.Stock)
	}
	if len(orderRepo.orders) != 0 {
		t.Errorf("no order may be created on refusal, found %d", len(orderRepo.orders))
	}
}

func TestCheckoutRejectsTotalMismatch(t *testing.T) {
	productRepo := newFakeProductRepository()
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(t, productRepo, orderRepo)

	mug := seedProduct(t, productRepo, "Mug", 100, 10)

	_, err := svc.Checkout(context.Background(), 1, &CheckoutInput{
		Customer: validCustomer(),
		Items:    []CheckoutItem{{ProductID: mug.ID, Quantity: 1}},
		Total:    1, // client claims a cheaper price
	})
	if !errors.Is(err, ErrTotalMismatch) {
		t.Fatalf("expected ErrTotalMismatch, got %v", err)
	}
	if mug.Stock != 10 {
		t.Errorf("stock must be untouched on rejection, got %d", mug.Stock)
	}
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	productRepo := newFakeProductRepository()
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(t, productRepo, orderRepo)

	mug := seedProduct(t, productRepo, "Mug", 100, 10)
	rare := seedProduct(t, productRepo, "Rare", 500, 1)

	_, err := svc.Checkout(context.Background(), 1, &CheckoutInput{
		Customer: validCustomer(),
		Items: []CheckoutItem{
			{ProductID: mug.ID, Quantity: 2},
			{ProductID: rare.ID, Quantity: 3},
		},
	})
	if !errors.Is(err, ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}
	// The first decrement must be compensated
	if mug.Stock != 10 {
		t.Errorf("expected mug stock restored to 10, got %d", mug.Stock)
	}
	if rare.Stock != 1 {
		t.Errorf("expected rare stock unchanged at 1, got %d", rare.Stock)
	}
	if len(orderRepo.orders) != 0 {
		t.Errorf("no order may be created on failure, found %d", len(orderRepo.orders))
	}
}

// failingOrderRepository refuses Create to exercise the rollback path
type failingOrderRepository struct {
	fakeOrderRepository
}

func (r *failingOrderRepository) Create(_ context.Context, _ *models.Order) error {
	return errors.New("insert failed")
}

func TestCheckoutCreateFailureRestoresStock(t *testing.T) {
	productRepo := newFakeProductRepository()
	orderRepo := &failingOrderRepository{fakeOrderRepository: *newFakeOrderRepository()}
	svc := newTestOrderService(t, productRepo, orderRepo)

	mug := seedProduct(t, productRepo, "Mug", 100, 10)

	_, err := svc.Checkout(context.Background(), 1, &CheckoutInput{
		Customer: validCustomer(),
		Items:    []CheckoutItem{{ProductID: mug.ID, Quantity: 3}},
	})
	if err == nil {
		t.Fatal("expected an error when the order cannot be persisted")
	}
	if mug.Stock != 10 {
		t.Errorf("expected stock restored to 10, got %d", mug.Stock)
	}
}

func TestCheckoutUnknownProduct(t *testing.T) {
	svc := newTestOrderService(t, newFakeProductRepository(), newFakeOrderRepository())

	_, err := svc.Checkout(context.Background(), 1, &CheckoutInput{
		Customer: validCustomer(),
		Items:    []CheckoutItem{{ProductID: 404, Quantity: 1}},
	})
	if !errors.Is(err, ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}
}

func TestCheckoutValidatesInput(t *testing.T) {
	productRepo := newFakeProductRepository()
	svc := newTestOrderService(t, productRepo, newFakeOrderRepository())
	mug := seedProduct(t, productRepo, "Mug", 100, 10)

	cases := []struct {
		name  string
		input *CheckoutInput
	}{
		{"missing customer", &CheckoutInput{Items: []CheckoutItem{{ProductID: mug.ID, Quantity: 1}}}},
		{"empty cart", &CheckoutInput{Customer: validCustomer()}},
		{"zero quantity", &CheckoutInput{Customer: validCustomer(), Items: []CheckoutItem{{ProductID: mug.ID, Quantity: 0}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Checkout(context.Background(), 1, tc.input); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestGetForeignOrderIsNotFound(t *testing.T) {
	productRepo := newFakeProductRepository()
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(t, productRepo, orderRepo)

	mug := seedProduct(t, productRepo, "Mug", 100, 10)
	order, err := svc.Checkout(context.Background(), 1, &CheckoutInput{
		Customer: validCustomer(),
		Items:    []CheckoutItem{{ProductID: mug.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	// Owner sees the order
	if _, err := svc.Get(context.Background(), 1, order.ID); err != nil {
		t.Fatalf("owner could not read own order: %v", err)
	}

	// Anyone else gets the same answer as for an unknown order
	if _, err := svc.Get(context.Background(), 2, order.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a foreign order, got %v", err)
	}
}
