package entity

import (
	"context"
	"time"

	"ricemill/internal/core/apperror"
)

// Document is the base type for operational records (purchases, sales,
// inward receipts, outward dispatches, milling runs, labor costs).
type Document struct {
	BaseEntity

	// Number is the document number, auto-generated day-scoped
	// (PREFIX-DDMMYY-N) unless entered by the operator.
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Remarks is an optional operator note
	Remarks string `db:"remarks" json:"remarks,omitempty"`
}

// NewDocument creates a new Document with generated ID and current date.
func NewDocument() Document {
	return Document{
		BaseEntity: NewBaseEntity(),
		Date:       time.Now().UTC(),
	}
}

// DocumentNumber returns the slip number.
func (d *Document) DocumentNumber() string {
	return d.Number
}

// SetDocumentNumber assigns the slip number.
func (d *Document) SetDocumentNumber(number string) {
	d.Number = number
}

// DocumentDate returns the business date used for number generation.
func (d *Document) DocumentDate() time.Time {
	return d.Date
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	return nil
}
