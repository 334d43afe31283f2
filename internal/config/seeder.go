package config

import (
	"log"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedDemoCatalog(); err != nil {
		log.Printf("⚠️ Catalog seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds the default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Admin",
		Email:    "admin@shoplane.dev",
		Password: hashedPassword,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedDemoCatalog seeds a demo seller with a few products when the
// catalog is empty, so a fresh dev instance has something to list
func (s *Seeder) seedDemoCatalog() error {
	var count int64
	s.db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("seller123456")
	if err != nil {
		return err
	}

	seller := &models.User{
		Name:       "Demo Seller",
		Email:      "seller@shoplane.dev",
		Password:   hashedPassword,
		Role:       models.RoleSeller,
		IsVerified: true,
		IsActive:   true,
	}
	if err := s.db.Create(seller).Error; err != nil {
		return err
	}

	products := []models.Product{
		{SellerID: seller.ID, Name: "Canvas Tote Bag", Description: "Plain cotton tote", Price: 250, Stock: 40},
		{SellerID: seller.ID, Name: "Ceramic Mug", Description: "350ml stoneware mug", Price: 180, Stock: 60},
		{SellerID: seller.ID, Name: "Notebook A5", Description: "Dotted, 120 pages", Price: 95, Stock: 100},
	}
	if err := s.db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("✅ Demo catalog created: %d products", len(products))
	return nil
}
