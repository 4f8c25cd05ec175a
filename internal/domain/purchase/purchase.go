// Package purchase provides purchase documents: rice, FRK, paddy and
// sack (gunny bag) procurement from parties.
package purchase

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/docnum"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

// Kind identifies the purchase sub-type.
type Kind string

const (
	KindRice  Kind = "rice"
	KindFrk   Kind = "frk"
	KindPaddy Kind = "paddy"
	KindSack  Kind = "sack"
)

// Prefix returns the slip number prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindRice:
		return docnum.PrefixRicePurchase
	case KindFrk:
		return docnum.PrefixFrkPurchase
	case KindPaddy:
		return docnum.PrefixPaddyPurchase
	case KindSack:
		return docnum.PrefixSackPurchase
	}
	return ""
}

// Purchase is a procurement document.
type Purchase struct {
	entity.Document

	Kind     Kind   `db:"kind" json:"kind"`
	PartyID  id.ID  `db:"party_id" json:"partyId"`
	BrokerID *id.ID `db:"broker_id" json:"brokerId,omitempty"`

	// ItemName is free text (rice grade, gunny type, ...)
	ItemName string `db:"item_name" json:"itemName,omitempty"`

	Quantity types.Qty `db:"quantity" json:"quantity"`
	Rate     types.Qty `db:"rate" json:"rate"`
	Amount   types.Qty `db:"amount" json:"amount"`

	Vehicle string `db:"vehicle" json:"vehicle,omitempty"`
}

// New creates a purchase of the given kind with a generated ID.
func New(kind Kind, partyID id.ID) *Purchase {
	return &Purchase{
		Document: entity.NewDocument(),
		Kind:     kind,
		PartyID:  partyID,
	}
}

// NumberPrefix implements domain.Numbered.
func (p *Purchase) NumberPrefix() string {
	return p.Kind.Prefix()
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}
	if p.Kind.Prefix() == "" {
		return apperror.NewValidation("unknown purchase kind").
			WithDetail("field", "kind").
			WithDetail("value", string(p.Kind))
	}
	if id.IsNil(p.PartyID) {
		return apperror.NewValidation("party is required").
			WithDetail("field", "partyId")
	}
	if p.Quantity.IsNegative() || p.Rate.IsNegative() || p.Amount.IsNegative() {
		return apperror.NewValidation("quantity, rate and amount cannot be negative")
	}
	return nil
}

// Service provides purchase business logic.
type Service = domain.DocumentService[*Purchase]

// NewService creates the purchase service.
func NewService(repo domain.DocumentRepository[*Purchase], txManager tx.Manager, changes domain.ChangeLog, gen *docnum.Generator) *Service {
	return domain.NewDocumentService(repo, txManager, changes, gen, "purchase")
}
