package document_repo

import (
	"ricemill/internal/domain/milling"
	"ricemill/internal/infrastructure/storage/postgres"
)

const millingTable = "doc_milling_runs"

// MillingRepo implements domain.DocumentRepository for milling runs.
type MillingRepo struct {
	*BaseDocumentRepo[*milling.Run]
}

// NewMillingRepo creates a new milling run repository.
func NewMillingRepo(txm *postgres.TxManager) *MillingRepo {
	return &MillingRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			millingTable,
			func() *milling.Run { return &milling.Run{} },
		),
	}
}
