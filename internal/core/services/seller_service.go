package services

import (
	"context"
	"errors"
	"strings"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/adapters/persistence/repositories"
	"shoplane/internal/core/domain"

	"gorm.io/gorm"
)

// Seller errors
var (
	ErrAlreadySeller  = errors.New("user is already a seller")
	ErrAlreadyApplied = errors.New("seller application already submitted")
)

// SellerService handles seller applications, verification and payout details
type SellerService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.SellerProfileRepository
	orderRepo   repositories.OrderRepository
}

// NewSellerService creates a new seller service
func NewSellerService(
	userRepo repositories.UserRepository,
	profileRepo repositories.SellerProfileRepository,
	orderRepo repositories.OrderRepository,
) *SellerService {
	return &SellerService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
	}
}

// BankDetailsInput represents payout details input
type BankDetailsInput struct {
	BankAccount string `json:"bank_account"`
	BankName    string `json:"bank_name"`
	Wallet      string `json:"wallet"`
}

// Apply records a buyer's request to become a seller
func (s *SellerService) Apply(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleBuyer {
		return nil, ErrAlreadySeller
	}
	if user.SellerRequest {
		return nil, ErrAlreadyApplied
	}

	user.SellerRequest = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// SubmitVerification stores a seller's verification document
func (s *SellerService) SubmitVerification(ctx context.Context, userID uint, documentURL string) (*models.SellerProfile, error) {
	if strings.TrimSpace(documentURL) == "" {
		return nil, domain.ErrInvalidInput
	}

	profile, err := s.profileOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.DocumentURL = documentURL
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsVerified = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateBankDetails stores a seller's payout details
func (s *SellerService) UpdateBankDetails(ctx context.Context, userID uint, input *BankDetailsInput) (*models.SellerProfile, error) {
	if strings.TrimSpace(input.BankAccount) == "" || strings.TrimSpace(input.BankName) == "" {
		return nil, domain.ErrInvalidInput
	}

	profile, err := s.profileOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.BankAccount = input.BankAccount
	profile.BankName = input.BankName
	profile.Wallet = input.Wallet
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Dashboard returns a seller's product/order/revenue figures
func (s *SellerService) Dashboard(ctx context.Context, sellerID uint) (*repositories.SellerStats, error) {
	return s.orderRepo.SellerStats(ctx, sellerID)
}

func (s *SellerService) profileOrNew(ctx context.Context, userID uint) (*models.SellerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.SellerProfile{UserID: userID}, nil
		}
		return nil, err
	}
	return profile, nil
}
