package services

import (
	"context"
	"log"
	"time"

	"shoplane/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// Pending orders older than this are considered abandoned
const stalePendingAge = 24 * time.Hour

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron      *cron.Cron
	orderRepo repositories.OrderRepository
}

// NewCronService creates a new cron service
func NewCronService(orderRepo repositories.OrderRepository) *CronService {
	return &CronService{
		cron:      cron.New(),
		orderRepo: orderRepo,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() {
	// 02:00 daily: cancel abandoned pending orders
	_, err := s.cron.AddFunc("0 2 * * *", s.cancelStaleOrders)
	if err != nil {
		log.Printf("❌ Failed to schedule stale order sweep: %v", err)
		return
	}

	s.cron.Start()
	log.Println("✅ Cron service started")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Cron service stopped")
}

func (s *CronService) cancelStaleOrders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cancelled, err := s.orderRepo.CancelStalePending(ctx, time.Now().Add(-stalePendingAge))
	if err != nil {
		log.Printf("❌ Stale order sweep failed: %v", err)
		return
	}
	if cancelled > 0 {
		log.Printf("✅ Cancelled %d stale pending orders", cancelled)
	}
}
