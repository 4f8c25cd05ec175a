package document_repo

import (
	"ricemill/internal/domain/purchase"
	"ricemill/internal/infrastructure/storage/postgres"
)

const purchaseTable = "doc_purchases"

// PurchaseRepo implements domain.DocumentRepository for purchases.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Purchase]
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txm *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			purchaseTable,
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}
