// Package deliveryorder provides delivery order records. A delivery order
// is a committee-issued authorization for a fixed grain quantity; inward
// receipts and sale line items lift against it by string-matching on the
// operator-entered DO number.
package deliveryorder

import (
	"context"
	"strings"
	"time"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/tx"
	"ricemill/internal/domain"
)

// DeliveryOrder is the grain lifting authorization.
// Quantities are kept as the operator-entered decimal strings; parsing
// with zero fallback happens at reconciliation time.
type DeliveryOrder struct {
	entity.BaseEntity

	// DoNumber is assigned by the issuing committee, unique across orders
	DoNumber string `db:"do_number" json:"doNumber"`

	CommitteeCenter string `db:"committee_center" json:"committeeCenter"`

	GrainMota  string `db:"grain_mota" json:"grainMota"`
	GrainPatla string `db:"grain_patla" json:"grainPatla"`
	GrainSarna string `db:"grain_sarna" json:"grainSarna"`

	// Total is the authorized quantity the order budgets for
	Total string `db:"total" json:"total"`

	IssueDate time.Time `db:"issue_date" json:"issueDate"`
	Remarks   string    `db:"remarks" json:"remarks,omitempty"`
}

// New creates a delivery order with a generated ID.
func New(doNumber string) *DeliveryOrder {
	return &DeliveryOrder{
		BaseEntity: entity.NewBaseEntity(),
		DoNumber:   strings.TrimSpace(doNumber),
		IssueDate:  time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (d *DeliveryOrder) Validate(ctx context.Context) error {
	if strings.TrimSpace(d.DoNumber) == "" {
		return apperror.NewValidation("doNumber is required").
			WithDetail("field", "doNumber")
	}
	if d.IssueDate.IsZero() {
		return apperror.NewValidation("issueDate is required").
			WithDetail("field", "issueDate")
	}
	return nil
}

// Repository adds DO-number access to the generic catalog contract.
type Repository interface {
	domain.CatalogRepository[*DeliveryOrder]

	// GetByDoNumber retrieves an order by its committee-assigned number
	GetByDoNumber(ctx context.Context, doNumber string) (*DeliveryOrder, error)

	// ListAll returns every active order without pagination,
	// for reconciliation
	ListAll(ctx context.Context) ([]*DeliveryOrder, error)
}

// Service provides delivery order business logic. DO numbers are
// operator-entered, so no slip number generation is involved.
type Service struct {
	*domain.CatalogService[*DeliveryOrder]
	repo Repository
}

// NewService creates the delivery order service.
func NewService(repo Repository, txManager tx.Manager, changes domain.ChangeLog) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*DeliveryOrder](repo, txManager, changes, "deliveryOrder"),
		repo:           repo,
	}
}

// GetByDoNumber retrieves an order by its committee-assigned number.
func (s *Service) GetByDoNumber(ctx context.Context, doNumber string) (*DeliveryOrder, error) {
	return s.repo.GetByDoNumber(ctx, doNumber)
}
