package handlers

import (
	"errors"

	"shoplane/internal/adapters/http/middleware"
	"shoplane/internal/core/domain"
	"shoplane/internal/core/services"
	"shoplane/internal/pkg/response"
	"shoplane/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

// SellerHandler handles seller application, verification and payout endpoints
type SellerHandler struct {
	sellerService *services.SellerService
	store         storage.ImageStore
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(sellerService *services.SellerService, store storage.ImageStore) *SellerHandler {
	return &SellerHandler{sellerService: sellerService, store: store}
}

// Apply handles a buyer's request to become a seller
// @Summary Apply to become a seller
// @Description Record a seller application for the authenticated buyer
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /seller/apply [post]
func (h *SellerHandler) Apply(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.sellerService.Apply(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadySeller):
			return response.Conflict(c, "Account is already a seller")
		case errors.Is(err, services.ErrAlreadyApplied):
			return response.Conflict(c, "Seller application already submitted")
		default:
			return response.InternalServerError(c, "Failed to submit application")
		}
	}

	return response.Success(c, "Seller application submitted", user)
}

// SubmitVerification handles identity document upload for verification
// @Summary Submit verification document
// @Description Upload an identity document for seller verification
// @Tags Seller
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param document formData file true "Identity document"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /seller/verify [post]
func (h *SellerHandler) SubmitVerification(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return response.BadRequest(c, "Verification document is required")
	}

	documentURL, err := h.store.Save(fileHeader)
	if err != nil {
		return response.InternalServerError(c, "Failed to store document")
	}

	profile, err := h.sellerService.SubmitVerification(c.Context(), userID, documentURL)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Verification document is required")
		}
		return response.InternalServerError(c, "Failed to submit verification")
	}

	return response.Success(c, "Verification submitted", profile)
}

// UpdateBankDetails handles payout details update
// @Summary Update bank details
// @Description Update the seller's payout bank account and wallet
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.BankDetailsInput true "Bank details"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /seller/bank [put]
func (h *SellerHandler) UpdateBankDetails(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.BankDetailsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.sellerService.UpdateBankDetails(c.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Bank account and bank name are required")
		}
		return response.InternalServerError(c, "Failed to update bank details")
	}

	return response.Success(c, "Bank details updated", profile)
}

// Dashboard handles seller sales statistics
// @Summary Seller dashboard
// @Description Sales totals for the authenticated seller
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /seller/dashboard [get]
func (h *SellerHandler) Dashboard(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	stats, err := h.sellerService.Dashboard(c.Context(), sellerID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", stats)
}
