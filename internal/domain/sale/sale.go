// Package sale provides sale documents. A sale may draw grain against
// multiple delivery orders through its DoEntry line items; those
// quantities count as lifting during balance reconciliation.
package sale

import (
	"context"
	"strings"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/docnum"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

// Kind identifies the sale sub-type.
type Kind string

const (
	KindHusk  Kind = "husk"
	KindOther Kind = "other"
	KindSale  Kind = "sale"
)

// Prefix returns the slip number prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindHusk:
		return docnum.PrefixHuskSale
	case KindOther:
		return docnum.PrefixOtherSale
	case KindSale:
		return docnum.PrefixSale
	}
	return ""
}

// DoEntry is one line of a sale, optionally drawing against a delivery
// order. Sub-quantities stay as operator-entered decimal strings and are
// parsed with zero fallback at reconciliation time. Sale lines carry only
// the three main grades; maha and rb appear on inward receipts alone.
type DoEntry struct {
	ID     id.ID `db:"id" json:"id"`
	SaleID id.ID `db:"sale_id" json:"-"`

	// DoNumber matches a delivery order by value; empty or unmatched
	// entries simply contribute nothing to any balance
	DoNumber string `db:"do_number" json:"doNumber,omitempty"`

	DhanMota  string `db:"dhan_mota" json:"dhanMota"`
	DhanPatla string `db:"dhan_patla" json:"dhanPatla"`
	DhanSarna string `db:"dhan_sarna" json:"dhanSarna"`
}

// Lifting returns the entry's total lifted quantity.
func (e DoEntry) Lifting() types.Qty {
	return types.SumQty(e.DhanMota, e.DhanPatla, e.DhanSarna)
}

// Sale is a sale document with embedded DO line items.
type Sale struct {
	entity.Document

	Kind     Kind   `db:"kind" json:"kind"`
	PartyID  id.ID  `db:"party_id" json:"partyId"`
	BrokerID *id.ID `db:"broker_id" json:"brokerId,omitempty"`

	Quantity types.Qty `db:"quantity" json:"quantity"`
	Rate     types.Qty `db:"rate" json:"rate"`
	Amount   types.Qty `db:"amount" json:"amount"`

	Vehicle string `db:"vehicle" json:"vehicle,omitempty"`

	// DoEntries are persisted in a child table by the repository
	DoEntries []DoEntry `db:"-" json:"doEntries"`
}

// New creates a sale of the given kind with a generated ID.
func New(kind Kind, partyID id.ID) *Sale {
	return &Sale{
		Document: entity.NewDocument(),
		Kind:     kind,
		PartyID:  partyID,
	}
}

// NumberPrefix implements domain.Numbered.
func (s *Sale) NumberPrefix() string {
	return s.Kind.Prefix()
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}
	if s.Kind.Prefix() == "" {
		return apperror.NewValidation("unknown sale kind").
			WithDetail("field", "kind").
			WithDetail("value", string(s.Kind))
	}
	if id.IsNil(s.PartyID) {
		return apperror.NewValidation("party is required").
			WithDetail("field", "partyId")
	}
	for i := range s.DoEntries {
		s.DoEntries[i].DoNumber = strings.TrimSpace(s.DoEntries[i].DoNumber)
	}
	return nil
}

// Repository adds line item access to the generic document contract.
type Repository interface {
	domain.DocumentRepository[*Sale]

	// ListAll returns every active sale with its line items,
	// for reconciliation
	ListAll(ctx context.Context) ([]*Sale, error)
}

// Service provides sale business logic.
type Service = domain.DocumentService[*Sale]

// NewService creates the sale service.
func NewService(repo Repository, txManager tx.Manager, changes domain.ChangeLog, gen *docnum.Generator) *Service {
	return domain.NewDocumentService[*Sale](repo, txManager, changes, gen, "sale")
}
