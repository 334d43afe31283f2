package services

import (
	"context"
	"errors"
	"log"

	"shoplane/internal/config"
	"shoplane/internal/pkg/mq"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// Payment errors
var (
	ErrPaymentDisabled = errors.New("payment gateway is not configured")
	ErrChargeFailed    = errors.New("card charge failed")
)

// PaymentService charges cards through Omise and publishes payment events
type PaymentService struct {
	client *omise.Client
	events *mq.Publisher
}

// NewPaymentService creates a payment service. With empty keys the service
// is disabled and ChargeCard returns ErrPaymentDisabled.
func NewPaymentService(cfg *config.Config, events *mq.Publisher) (*PaymentService, error) {
	svc := &PaymentService{events: events}

	if cfg.Omise.PublicKey == "" || cfg.Omise.SecretKey == "" {
		return svc, nil
	}

	client, err := omise.NewClient(cfg.Omise.PublicKey, cfg.Omise.SecretKey)
	if err != nil {
		return nil, err
	}
	svc.client = client
	return svc, nil
}

// Enabled reports whether the gateway is configured
func (s *PaymentService) Enabled() bool {
	return s.client != nil
}

// ChargeCard charges a tokenized card for an order. Amount is in the
// currency's minor unit (satang for THB).
func (s *PaymentService) ChargeCard(ctx context.Context, orderNumber string, amount int64, currency, cardToken string) (*omise.Charge, error) {
	if s.client == nil {
		return nil, ErrPaymentDisabled
	}
	if amount <= 0 || cardToken == "" || currency == "" {
		return nil, ErrChargeFailed
	}

	charge := &omise.Charge{}
	req := &operations.CreateCharge{
		Amount:   amount,
		Currency: currency,
		Card:     cardToken,
		Metadata: map[string]any{"order_number": orderNumber},
	}

	if err := s.client.Do(charge, req); err != nil {
		s.publishFailed(ctx, orderNumber, "", "create_charge_error", err.Error())
		return nil, ErrChargeFailed
	}

	switch string(charge.Status) {
	case "successful":
		s.publishPaid(ctx, orderNumber, charge.ID, charge.Amount, charge.Currency)
		return charge, nil
	case "failed":
		var code, message string
		if charge.FailureCode != nil {
			code = *charge.FailureCode
		}
		if charge.FailureMessage != nil {
			message = *charge.FailureMessage
		}
		s.publishFailed(ctx, orderNumber, charge.ID, code, message)
		return nil, ErrChargeFailed
	default:
		// pending / awaiting_authorize are not final; the order stays
		// pending until a webhook or manual review settles it.
		log.Printf("⚠️ Charge %s for order %s is %s", charge.ID, orderNumber, charge.Status)
		return charge, nil
	}
}

func (s *PaymentService) publishPaid(ctx context.Context, orderNumber, chargeID string, amount int64, currency string) {
	_ = s.events.PublishJSON(ctx, "payment.paid", map[string]any{
		"order_number": orderNumber,
		"charge_id":    chargeID,
		"amount":       amount,
		"currency":     currency,
	})
}

func (s *PaymentService) publishFailed(ctx context.Context, orderNumber, chargeID, code, message string) {
	_ = s.events.PublishJSON(ctx, "payment.failed", map[string]any{
		"order_number":    orderNumber,
		"charge_id":       chargeID,
		"failure_code":    code,
		"failure_message": message,
	})
}
