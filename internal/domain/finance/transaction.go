// Package finance provides payment and receipt transactions against
// parties. Transactions carry no generated slip number; the bank or
// cash reference is operator-entered.
package finance

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

// Direction indicates whether money came in or went out.
type Direction string

const (
	DirectionPayment Direction = "payment"
	DirectionReceipt Direction = "receipt"
)

// Mode is the settlement channel.
type Mode string

const (
	ModeCash   Mode = "cash"
	ModeBank   Mode = "bank"
	ModeUPI    Mode = "upi"
	ModeCheque Mode = "cheque"
)

// Transaction is a money movement against a party.
type Transaction struct {
	entity.Document

	Direction Direction `db:"direction" json:"direction"`
	PartyID   id.ID     `db:"party_id" json:"partyId"`
	Amount    types.Qty `db:"amount" json:"amount"`
	Mode      Mode      `db:"mode" json:"mode"`

	// Reference is the cheque number, UTR or receipt book entry
	Reference string `db:"reference" json:"reference,omitempty"`
}

// New creates a transaction with a generated ID.
func New(direction Direction, partyID id.ID, amount types.Qty) *Transaction {
	return &Transaction{
		Document:  entity.NewDocument(),
		Direction: direction,
		PartyID:   partyID,
		Amount:    amount,
	}
}

// NumberPrefix implements domain.Numbered. Transactions are not numbered.
func (t *Transaction) NumberPrefix() string {
	return ""
}

// Validate implements entity.Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}
	if t.Direction != DirectionPayment && t.Direction != DirectionReceipt {
		return apperror.NewValidation("unknown transaction direction").
			WithDetail("field", "direction").
			WithDetail("value", string(t.Direction))
	}
	if id.IsNil(t.PartyID) {
		return apperror.NewValidation("party is required").
			WithDetail("field", "partyId")
	}
	if !t.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}
	return nil
}

// Service provides transaction business logic.
type Service = domain.DocumentService[*Transaction]

// NewService creates the transaction service.
func NewService(repo domain.DocumentRepository[*Transaction], txManager tx.Manager, changes domain.ChangeLog) *Service {
	return domain.NewDocumentService[*Transaction](repo, txManager, changes, nil, "transaction")
}
