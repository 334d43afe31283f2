package handlers

import (
	"errors"

	"shoplane/internal/adapters/http/middleware"
	"shoplane/internal/adapters/persistence/repositories"
	"shoplane/internal/core/domain"
	"shoplane/internal/core/services"
	"shoplane/internal/pkg/pagination"
	"shoplane/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout and order history endpoints
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout handles order placement
// @Summary Checkout
// @Description Place an order from cart items, optionally charging a card token
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CheckoutInput true "Checkout payload"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 402 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /orders [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	order, err := h.orderService.Checkout(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Customer details and at least one item are required")
		case errors.Is(err, services.ErrProductUnavailable), errors.Is(err, repositories.ErrInsufficientStock):
			return response.UnprocessableEntity(c, "One or more products are unavailable or out of stock")
		case errors.Is(err, services.ErrTotalMismatch):
			return response.UnprocessableEntity(c, "Order total does not match item prices")
		case errors.Is(err, services.ErrChargeFailed):
			return response.PaymentRequired(c, "Payment was declined")
		case errors.Is(err, services.ErrPaymentDisabled):
			return response.BadRequest(c, "Card payments are not available")
		default:
			return response.InternalServerError(c, "Failed to place order")
		}
	}

	return response.Created(c, "Order placed successfully", order)
}

// List handles the requester's order history
// @Summary List orders
// @Description List the authenticated user's orders, newest first
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)
	orders, total, err := h.orderService.ListByUser(c.Context(), userID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list orders")
	}

	return c.JSON(pagination.NewResponse(orders, params, total))
}

// Get handles order detail, scoped to the requester
// @Summary Get order
// @Description Get one of the authenticated user's orders
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid order ID")
	}

	order, err := h.orderService.Get(c.Context(), userID, uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Order not found")
		}
		return response.InternalServerError(c, "Failed to get order")
	}

	return response.Success(c, "Order retrieved successfully", order)
}
