package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"clubdesk/internal/domain/payment"
)

// PaymentStoreForOrchestrator defines the store interface needed by payment orchestrators.
type PaymentStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (payment.Payment, error)
	Save(ctx context.Context, p payment.Payment) error
	Delete(ctx context.Context, id string) error
}

// SavePaymentInput carries input for the save payment orchestrator.
type SavePaymentInput struct {
	Payment payment.Payment
}

// SavePaymentDeps holds dependencies for SavePayment.
type SavePaymentDeps struct {
	PaymentStore PaymentStoreForOrchestrator
	PlayerStore  PlayerStoreForOrchestrator
	GenerateID   func() string
}

// ExecuteSavePayment creates or updates a charge against a player.
// PRE: Payment passes domain validation; the player exists
// POST: Payment persisted; new charges default to pending
func ExecuteSavePayment(ctx context.Context, input SavePaymentInput, deps SavePaymentDeps) (payment.Payment, error) {
	p := input.Payment

	if p.Status == "" {
		p.Status = payment.StatusPending
	}
	if err := p.Validate(); err != nil {
		return payment.Payment{}, err
	}
	if _, err := deps.PlayerStore.GetByID(ctx, p.PlayerID); err != nil {
		return payment.Payment{}, errors.New("player not found")
	}

	created := p.ID == ""
	if created {
		p.ID = deps.GenerateID()
	}

	if err := deps.PaymentStore.Save(ctx, p); err != nil {
		return payment.Payment{}, err
	}

	event := "payment_updated"
	if created {
		event = "payment_created"
	}
	slog.Info("payment_event", "event", event, "payment_id", p.ID, "player_id", p.PlayerID, "amount", p.Amount, "category", p.Category)
	return p, nil
}

// MarkPaymentPaidInput carries the settle request.
type MarkPaymentPaidInput struct {
	PaymentID string
	PaidDate  string // YYYY-MM-DD
}

// MarkPaymentPaidDeps holds dependencies for MarkPaymentPaid.
type MarkPaymentPaidDeps struct {
	PaymentStore PaymentStoreForOrchestrator
}

// ExecuteMarkPaymentPaid settles an outstanding charge.
// PRE: PaymentID names a pending payment; PaidDate parses as YYYY-MM-DD
// POST: Payment status is paid with the given date
func ExecuteMarkPaymentPaid(ctx context.Context, input MarkPaymentPaidInput, deps MarkPaymentPaidDeps) (payment.Payment, error) {
	if input.PaymentID == "" {
		return payment.Payment{}, errors.New("payment id is required")
	}

	p, err := deps.PaymentStore.GetByID(ctx, input.PaymentID)
	if err != nil {
		return payment.Payment{}, errors.New("payment not found")
	}
	if err := p.MarkPaid(input.PaidDate); err != nil {
		return payment.Payment{}, err
	}
	if err := deps.PaymentStore.Save(ctx, p); err != nil {
		return payment.Payment{}, err
	}

	slog.Info("payment_event", "event", "payment_settled", "payment_id", p.ID, "paid_date", p.PaidDate)
	return p, nil
}

// DeletePaymentDeps holds dependencies for DeletePayment.
type DeletePaymentDeps struct {
	PaymentStore PaymentStoreForOrchestrator
}

// ExecuteDeletePayment removes a charge.
// PRE: id names an existing payment
// POST: Payment is gone
func ExecuteDeletePayment(ctx context.Context, id string, deps DeletePaymentDeps) error {
	if id == "" {
		return errors.New("payment id is required")
	}
	if _, err := deps.PaymentStore.GetByID(ctx, id); err != nil {
		return errors.New("payment not found")
	}
	if err := deps.PaymentStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("payment_event", "event", "payment_deleted", "payment_id", id)
	return nil
}
