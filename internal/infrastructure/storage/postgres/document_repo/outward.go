package document_repo

import (
	"ricemill/internal/domain/outward"
	"ricemill/internal/infrastructure/storage/postgres"
)

const outwardTable = "doc_outward_dispatches"

// OutwardRepo implements domain.DocumentRepository for outward dispatches.
type OutwardRepo struct {
	*BaseDocumentRepo[*outward.Dispatch]
}

// NewOutwardRepo creates a new outward dispatch repository.
func NewOutwardRepo(txm *postgres.TxManager) *OutwardRepo {
	return &OutwardRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			outwardTable,
			func() *outward.Dispatch { return &outward.Dispatch{} },
		),
	}
}
