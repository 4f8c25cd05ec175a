package catalog_repo

import (
	"ricemill/internal/domain/committee"
	"ricemill/internal/infrastructure/storage/postgres"
)

const committeeTable = "cat_committee_centers"

// CommitteeRepo implements domain.CatalogRepository for committee centers.
type CommitteeRepo struct {
	*BaseCatalogRepo[*committee.Center]
}

// NewCommitteeRepo creates a new committee center repository.
func NewCommitteeRepo(txm *postgres.TxManager) *CommitteeRepo {
	return &CommitteeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			committeeTable,
			[]string{"name", "district"},
			func() *committee.Center { return &committee.Center{} },
		),
	}
}
