package handlers

import (
	"errors"
	"strconv"
	"strings"

	"shoplane/internal/adapters/http/middleware"
	"shoplane/internal/core/domain"
	"shoplane/internal/core/services"
	"shoplane/internal/pkg/pagination"
	"shoplane/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles catalog and seller product endpoints
type ProductHandler struct {
	productService *services.ProductService
	importService  *services.ImportService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService, importService *services.ImportService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		importService:  importService,
	}
}

// List handles the public catalog listing
// @Summary List products
// @Description List catalog products, newest first
// @Tags Products
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	products, total, err := h.productService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return c.JSON(pagination.NewResponse(products, params, total))
}

// Get handles public product detail
// @Summary Get product
// @Description Get a single catalog product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid product ID")
	}

	product, err := h.productService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to get product")
	}

	return response.Success(c, "Product retrieved successfully", product)
}

// Create handles seller product creation (multipart form)
// @Summary Create product
// @Description Create a product with an optional image (sellers only)
// @Tags Products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Product name"
// @Param price formData number true "Price"
// @Param description formData string false "Description"
// @Param stock formData int false "Stock"
// @Param image formData file false "Product image"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /products/create [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	input, err := parseProductForm(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	product, err := h.productService.Create(c.Context(), sellerID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Name and a positive price are required")
		}
		return response.InternalServerError(c, "Failed to create product")
	}

	return response.Created(c, "Product created successfully", product)
}

// ListMine handles a seller's own product listing
// @Summary List own products
// @Description List the authenticated seller's products
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} pagination.Response
// @Router /seller/products [get]
func (h *ProductHandler) ListMine(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)
	products, total, err := h.productService.ListBySeller(c.Context(), sellerID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return c.JSON(pagination.NewResponse(products, params, total))
}

// Update handles seller product update
// @Summary Update product
// @Description Update the seller's own product
// @Tags Seller
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /seller/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid product ID")
	}

	input, err := parseProductUpdateForm(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	product, err := h.productService.Update(c.Context(), sellerID, uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Product not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid product fields")
		default:
			return response.InternalServerError(c, "Failed to update product")
		}
	}

	return response.Success(c, "Product updated successfully", product)
}

// Delete handles seller product deletion
// @Summary Delete product
// @Description Delete the seller's own product
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /seller/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid product ID")
	}

	if err := h.productService.Delete(c.Context(), sellerID, uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to delete product")
	}

	return response.Success(c, "Product deleted successfully", nil)
}

// Import handles seller bulk product import from an xlsx file
// @Summary Import products
// @Description Bulk create products from an xlsx upload (sellers only)
// @Tags Seller
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Workbook (name, description, price, stock)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /seller/products/import [post]
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Workbook file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Failed to open uploaded file")
	}
	defer file.Close()

	result, err := h.importService.ImportProducts(c.Context(), sellerID, file)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWorkbook) {
			return response.BadRequest(c, "Invalid workbook file")
		}
		return response.InternalServerError(c, "Failed to import products")
	}

	return response.Success(c, "Import completed", result)
}

// parseProductForm decodes a multipart product creation form, failing
// closed on missing or malformed required fields
func parseProductForm(c *fiber.Ctx) (*services.CreateProductInput, error) {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return nil, errors.New("name is required")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return nil, errors.New("price must be a positive number")
	}

	stock := 0
	if v := c.FormValue("stock"); v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil || stock < 0 {
			return nil, errors.New("stock must be a non-negative integer")
		}
	}

	input := &services.CreateProductInput{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
	}

	if image, err := c.FormFile("image"); err == nil {
		input.Image = image
	}

	return input, nil
}

// parseProductUpdateForm decodes a multipart product update form where
// every field is optional but must be well-formed when present
func parseProductUpdateForm(c *fiber.Ctx) (*services.UpdateProductInput, error) {
	input := &services.UpdateProductInput{}

	if v := c.FormValue("name"); v != "" {
		name := strings.TrimSpace(v)
		input.Name = &name
	}
	if v := c.FormValue("description"); v != "" {
		input.Description = &v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price <= 0 {
			return nil, errors.New("price must be a positive number")
		}
		input.Price = &price
	}
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return nil, errors.New("stock must be a non-negative integer")
		}
		input.Stock = &stock
	}
	if image, err := c.FormFile("image"); err == nil {
		input.Image = image
	}

	return input, nil
}
