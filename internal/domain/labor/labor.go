// Package labor provides labor cost documents for loading, unloading,
// milling and sundry work done by labor groups.
package labor

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/docnum"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/tx"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

// Kind identifies the labor cost sub-type.
type Kind string

const (
	KindInward  Kind = "inward"
	KindOutward Kind = "outward"
	KindMilling Kind = "milling"
	KindOther   Kind = "other"
)

// Prefix returns the slip number prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindInward:
		return docnum.PrefixInwardLabor
	case KindOutward:
		return docnum.PrefixOutwardLabor
	case KindMilling:
		return docnum.PrefixMillingLabor
	case KindOther:
		return docnum.PrefixOtherLabor
	}
	return ""
}

// Cost is a labor expense document.
type Cost struct {
	entity.Document

	Kind Kind `db:"kind" json:"kind"`

	// WorkDescription is free text describing the job
	WorkDescription string `db:"work_description" json:"workDescription"`

	// LaborGroup names the gang or contractor paid
	LaborGroup string `db:"labor_group" json:"laborGroup,omitempty"`

	Quantity types.Qty `db:"quantity" json:"quantity"`
	Rate     types.Qty `db:"rate" json:"rate"`
	Amount   types.Qty `db:"amount" json:"amount"`
}

// New creates a labor cost of the given kind with a generated ID.
func New(kind Kind) *Cost {
	return &Cost{
		Document: entity.NewDocument(),
		Kind:     kind,
	}
}

// NumberPrefix implements domain.Numbered.
func (c *Cost) NumberPrefix() string {
	return c.Kind.Prefix()
}

// Validate implements entity.Validatable.
func (c *Cost) Validate(ctx context.Context) error {
	if err := c.Document.Validate(ctx); err != nil {
		return err
	}
	if c.Kind.Prefix() == "" {
		return apperror.NewValidation("unknown labor kind").
			WithDetail("field", "kind").
			WithDetail("value", string(c.Kind))
	}
	if c.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}
	return nil
}

// Service provides labor cost business logic.
type Service = domain.DocumentService[*Cost]

// NewService creates the labor cost service.
func NewService(repo domain.DocumentRepository[*Cost], txManager tx.Manager, changes domain.ChangeLog, gen *docnum.Generator) *Service {
	return domain.NewDocumentService(repo, txManager, changes, gen, "laborCost")
}
