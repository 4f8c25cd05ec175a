// Package outward provides outward dispatch documents recording goods
// leaving the mill: FRK, government rice, private rice and sundries.
package outward

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

// Kind identifies the outward sub-type.
type Kind string

const (
	KindFrk         Kind = "frk"
	KindGovtRice    Kind = "govt-rice"
	KindOther       Kind = "other"
	KindPrivateRice Kind = "private-rice"
)

// Prefix returns the slip number prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindFrk:
		return docnum.PrefixFrkOutward
	case KindGovtRice:
		return docnum.PrefixGovtRiceOutward
	case KindOther:
		return docnum.PrefixOtherOutward
	case KindPrivateRice:
		return docnum.PrefixPrivateRiceOutward
	}
	return ""
}

// Dispatch is an outward goods movement.
type Dispatch struct {
	entity.Document

	Kind    Kind   `db:"kind" json:"kind"`
	PartyID *id.ID `db:"party_id" json:"partyId,omitempty"`

	// Destination is free text (depot, godown, buyer site)
	Destination string `db:"destination" json:"destination,omitempty"`

	Quantity types.Qty `db:"quantity" json:"quantity"`

	Vehicle      string `db:"vehicle" json:"vehicle,omitempty"`
	GunnyNew     int    `db:"gunny_new" json:"gunnyNew"`
	GunnyOld     int    `db:"gunny_old" json:"gunnyOld"`
	GunnyPlastic int    `db:"gunny_plastic" json:"gunnyPlastic"`
}

// New creates a dispatch of the given kind with a generated ID.
func New(kind Kind) *Dispatch {
	return &Dispatch{
		Document: entity.NewDocument(),
		Kind:     kind,
	}
}

// NumberPrefix implements domain.Numbered.
func (d *Dispatch) NumberPrefix() string {
	return d.Kind.Prefix()
}

// Validate implements entity.Validatable.
func (d *Dispatch) Validate(ctx context.Context) error {
	if err := d.Document.Validate(ctx); err != nil {
		return err
	}
	if d.Kind.Prefix() == "" {
		return apperror.NewValidation("unknown outward kind").
			WithDetail("field", "kind").
			WithDetail("value", string(d.Kind))
	}
	if d.Quantity.IsNegative() {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}
	return nil
}

// Service provides outward dispatch business logic.
type Service = domain.DocumentService[*Dispatch]

// NewService creates the outward dispatch service.
func NewService(repo domain.DocumentRepository[*Dispatch], txManager tx.Manager, changes domain.ChangeLog, gen *docnum.Generator) *Service {
	return domain.NewDocumentService(repo, txManager, changes, gen, "outwardDispatch")
}
