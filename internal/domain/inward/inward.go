// Package inward provides inward receipt documents recording grain
// arriving at the mill, usually against a delivery order.
package inward

import (
	"context"
	"strings"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/docnum"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/tx"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

// Kind identifies the inward sub-type.
type Kind string

const (
	KindFrk     Kind = "frk"
	KindOther   Kind = "other"
	KindPaddy   Kind = "paddy"
	KindPrivate Kind = "private"
	KindSack    Kind = "sack"
)

// Prefix returns the slip number prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindFrk:
		return docnum.PrefixFrkInward
	case KindOther:
		return docnum.PrefixOtherInward
	case KindPaddy:
		return docnum.PrefixPaddyInward
	case KindPrivate:
		return docnum.PrefixPrivateInward
	case KindSack:
		return docnum.PrefixSackInward
	}
	return ""
}

// Receipt is an inward grain receipt. Sub-quantities stay as
// operator-entered decimal strings and are parsed with zero fallback
// at reconciliation time. Inward carries two extra grades (maha, rb)
// that sale line items do not.
type Receipt struct {
	entity.Document

	Kind Kind `db:"kind" json:"kind"`

	// DoNumber matches a delivery order by value, not by foreign key;
	// receipts with no matching order are kept and contribute nothing
	DoNumber string `db:"do_number" json:"doNumber,omitempty"`

	DhanMota  string `db:"dhan_mota" json:"dhanMota"`
	DhanPatla string `db:"dhan_patla" json:"dhanPatla"`
	DhanSarna string `db:"dhan_sarna" json:"dhanSarna"`
	DhanMaha  string `db:"dhan_maha" json:"dhanMaha"`
	DhanRb    string `db:"dhan_rb" json:"dhanRb"`

	Vehicle      string `db:"vehicle" json:"vehicle,omitempty"`
	GunnyNew     int    `db:"gunny_new" json:"gunnyNew"`
	GunnyOld     int    `db:"gunny_old" json:"gunnyOld"`
	GunnyPlastic int    `db:"gunny_plastic" json:"gunnyPlastic"`
}

// New creates a receipt of the given kind with a generated ID.
func New(kind Kind) *Receipt {
	return &Receipt{
		Document: entity.NewDocument(),
		Kind:     kind,
	}
}

// Lifting returns the receipt's total lifted quantity across all five grades.
func (r *Receipt) Lifting() types.Qty {
	return types.SumQty(r.DhanMota, r.DhanPatla, r.DhanSarna, r.DhanMaha, r.DhanRb)
}

// NumberPrefix implements domain.Numbered.
func (r *Receipt) NumberPrefix() string {
	return r.Kind.Prefix()
}

// Validate implements entity.Validatable.
func (r *Receipt) Validate(ctx context.Context) error {
	if err := r.Document.Validate(ctx); err != nil {
		return err
	}
	if r.Kind.Prefix() == "" {
		return apperror.NewValidation("unknown inward kind").
			WithDetail("field", "kind").
			WithDetail("value", string(r.Kind))
	}
	r.DoNumber = strings.TrimSpace(r.DoNumber)
	return nil
}

// Repository adds reconciliation access to the generic document contract.
type Repository interface {
	domain.DocumentRepository[*Receipt]

	// ListAll returns every active receipt, for reconciliation
	ListAll(ctx context.Context) ([]*Receipt, error)
}

// Service provides inward receipt business logic.
type Service = domain.DocumentService[*Receipt]

// NewService creates the inward receipt service.
func NewService(repo Repository, txManager tx.Manager, changes domain.ChangeLog, gen *docnum.Generator) *Service {
	return domain.NewDocumentService[*Receipt](repo, txManager, changes, gen, "inwardReceipt")
}
