package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/finance"
	"ricemill/internal/infrastructure/storage/postgres"
)

const transactionTable = "doc_transactions"

// TransactionRepo implements domain.DocumentRepository for transactions.
type TransactionRepo struct {
	*BaseDocumentRepo[*finance.Transaction]
}

// NewTransactionRepo creates a new transaction repository.
func NewTransactionRepo(txm *postgres.TxManager) *TransactionRepo {
	return &TransactionRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			transactionTable,
			func() *finance.Transaction { return &finance.Transaction{} },
		),
	}
}

// ListByParty returns a party's active transactions, newest first.
func (r *TransactionRepo) ListByParty(ctx context.Context, partyID id.ID) ([]*finance.Transaction, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"party_id": partyID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("date DESC")
	return r.SelectAll(ctx, q)
}
