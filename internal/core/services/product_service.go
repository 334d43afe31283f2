package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/adapters/persistence/repositories"
	"shoplane/internal/core/domain"
	"shoplane/internal/pkg/storage"

	"gorm.io/gorm"
)

// ProductService handles catalog and seller product management
type ProductService struct {
	productRepo repositories.ProductRepository
	images      storage.ImageStore
}

// NewProductService creates a new product service
func NewProductService(productRepo repositories.ProductRepository, images storage.ImageStore) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		images:      images,
	}
}

// CreateProductInput represents product creation input
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Image       *multipart.FileHeader
}

// UpdateProductInput represents product update input
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Image       *multipart.FileHeader
}

// List lists catalog products newest first
func (s *ProductService) List(ctx context.Context, offset, limit int) ([]*models.ProductResponse, int64, error) {
	products, total, err := s.productRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toProductResponses(products), total, nil
}

// ListBySeller lists a seller's own products
func (s *ProductService) ListBySeller(ctx context.Context, sellerID uint, offset, limit int) ([]*models.ProductResponse, int64, error) {
	products, total, err := s.productRepo.ListBySeller(ctx, sellerID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toProductResponses(products), total, nil
}

// Get returns a single catalog product
func (s *ProductService) Get(ctx context.Context, id uint) (*models.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return product.ToResponse(), nil
}

// Create creates a product for a seller, storing the image when present
func (s *ProductService) Create(ctx context.Context, sellerID uint, input *CreateProductInput) (*models.ProductResponse, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Price <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	var imageURL string
	if input.Image != nil && input.Image.Size > 0 {
		url, err := s.images.Save(input.Image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	product := &models.Product{
		SellerID:    sellerID,
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    imageURL,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product.ToResponse(), nil
}

// Update updates a seller's own product. A product owned by someone else
// is reported as not found.
func (s *ProductService) Update(ctx context.Context, sellerID, id uint, input *UpdateProductInput) (*models.ProductResponse, error) {
	product, err := s.ownedProduct(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *input.Stock
	}
	if input.Image != nil && input.Image.Size > 0 {
		url, err := s.images.Save(input.Image)
		if err != nil {
			return nil, err
		}
		_ = s.images.Remove(product.ImageURL)
		product.ImageURL = url
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product.ToResponse(), nil
}

// Delete deletes a seller's own product
func (s *ProductService) Delete(ctx context.Context, sellerID, id uint) error {
	product, err := s.ownedProduct(ctx, sellerID, id)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, product.ID)
}

func (s *ProductService) ownedProduct(ctx context.Context, sellerID, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductResponses(products []*models.Product) []*models.ProductResponse {
	responses := make([]*models.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = p.ToResponse()
	}
	return responses
}
