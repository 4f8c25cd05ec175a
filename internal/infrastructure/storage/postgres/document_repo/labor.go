package document_repo

import (
	"ricemill/internal/domain/labor"
	"ricemill/internal/infrastructure/storage/postgres"
)

const laborTable = "doc_labor_costs"

// LaborRepo implements domain.DocumentRepository for labor costs.
type LaborRepo struct {
	*BaseDocumentRepo[*labor.Cost]
}

// NewLaborRepo creates a new labor cost repository.
func NewLaborRepo(txm *postgres.TxManager) *LaborRepo {
	return &LaborRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			laborTable,
			func() *labor.Cost { return &labor.Cost{} },
		),
	}
}
