// Package milling provides milling run documents: paddy in, rice and
// by-products out.
package milling

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/docnum"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/tx"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

// Kind identifies the milling sub-type.
type Kind string

const (
	KindPaddy Kind = "paddy"
	KindRice  Kind = "rice"
)

// Prefix returns the slip number prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindPaddy:
		return docnum.PrefixPaddyMilling
	case KindRice:
		return docnum.PrefixRiceMilling
	}
	return ""
}

// Run is one milling batch.
type Run struct {
	entity.Document

	Kind Kind `db:"kind" json:"kind"`

	// Mill identifies the machine or line the batch ran on
	Mill string `db:"mill" json:"mill,omitempty"`

	InputQty types.Qty `db:"input_qty" json:"inputQty"`

	OutputRice   types.Qty `db:"output_rice" json:"outputRice"`
	OutputBran   types.Qty `db:"output_bran" json:"outputBran"`
	OutputHusk   types.Qty `db:"output_husk" json:"outputHusk"`
	OutputBroken types.Qty `db:"output_broken" json:"outputBroken"`
}

// New creates a milling run of the given kind with a generated ID.
func New(kind Kind) *Run {
	return &Run{
		Document: entity.NewDocument(),
		Kind:     kind,
	}
}

// NumberPrefix implements domain.Numbered.
func (r *Run) NumberPrefix() string {
	return r.Kind.Prefix()
}

// Validate implements entity.Validatable.
func (r *Run) Validate(ctx context.Context) error {
	if err := r.Document.Validate(ctx); err != nil {
		return err
	}
	if r.Kind.Prefix() == "" {
		return apperror.NewValidation("unknown milling kind").
			WithDetail("field", "kind").
			WithDetail("value", string(r.Kind))
	}
	if r.InputQty.IsNegative() {
		return apperror.NewValidation("input quantity cannot be negative").
			WithDetail("field", "inputQty")
	}
	return nil
}

// Service provides milling run business logic.
type Service = domain.DocumentService[*Run]

// NewService creates the milling run service.
func NewService(repo domain.DocumentRepository[*Run], txManager tx.Manager, changes domain.ChangeLog, gen *docnum.Generator) *Service {
	return domain.NewDocumentService(repo, txManager, changes, gen, "millingRun")
}
