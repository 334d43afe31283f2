package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/config"
	"shoplane/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// stubUserRepository serves a single user for handler tests
type stubUserRepository struct {
	user *models.User
}

func (r *stubUserRepository) Create(_ context.Context, user *models.User) error {
	r.user = user
	return nil
}

func (r *stubUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.user, nil
}

func (r *stubUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if r.user == nil || r.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return r.user, nil
}

func (r *stubUserRepository) Update(_ context.Context, user *models.User) error {
	r.user = user
	return nil
}

func (r *stubUserRepository) List(_ context.Context, offset, limit int, _ string) ([]*models.User, int64, error) {
	if r.user == nil {
		return nil, 0, nil
	}
	return []*models.User{r.user}, 1, nil
}

func (r *stubUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return r.user != nil && r.user.Email == email, nil
}

func TestGetProfileReturnsDTO(t *testing.T) {
	repo := &stubUserRepository{user: &models.User{
		ID:        1,
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "$2a$12$notarealhash",
		Role:      models.RoleBuyer,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}}

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "handler-test-secret", ExpiryDays: 7}}
	handler := NewAccountHandler(services.NewUserService(repo), services.NewAuthService(repo, cfg))

	app := fiber.New()
	app.Get("/profile", func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return handler.GetProfile(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/profile", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected a success envelope")
	}

	if envelope.Data["email"] != "alice@example.com" {
		t.Errorf("expected email in profile, got %v", envelope.Data["email"])
	}
	// The DTO shape: no persistence-only fields leak through
	if _, ok := envelope.Data["updated_at"]; ok {
		t.Error("profile must use the response DTO, not the raw model")
	}
	if _, ok := envelope.Data["password"]; ok {
		t.Error("profile must never carry the password digest")
	}
}
