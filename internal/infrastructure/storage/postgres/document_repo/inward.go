package document_repo

import (
	"context"

	"ricemill/internal/domain/inward"
	"ricemill/internal/infrastructure/storage/postgres"
)

const inwardTable = "doc_inward_receipts"

// InwardRepo implements inward.Repository.
type InwardRepo struct {
	*BaseDocumentRepo[*inward.Receipt]
}

// NewInwardRepo creates a new inward receipt repository.
func NewInwardRepo(txm *postgres.TxManager) *InwardRepo {
	return &InwardRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			inwardTable,
			func() *inward.Receipt { return &inward.Receipt{} },
		),
	}
}

// ListAll returns every active receipt, for reconciliation.
func (r *InwardRepo) ListAll(ctx context.Context) ([]*inward.Receipt, error) {
	return r.ListAllActive(ctx)
}
