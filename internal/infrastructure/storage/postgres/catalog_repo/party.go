package catalog_repo

import (
	"ricemill/internal/domain/party"
	"ricemill/internal/infrastructure/storage/postgres"
)

const partyTable = "cat_parties"

// PartyRepo implements domain.CatalogRepository for parties.
type PartyRepo struct {
	*BaseCatalogRepo[*party.Party]
}

// NewPartyRepo creates a new party repository.
func NewPartyRepo(txm *postgres.TxManager) *PartyRepo {
	return &PartyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			partyTable,
			[]string{"name", "phone"},
			func() *party.Party { return &party.Party{} },
		),
	}
}
