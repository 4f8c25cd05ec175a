package catalog_repo

import (
	"ricemill/internal/domain/broker"
	"ricemill/internal/infrastructure/storage/postgres"
)

const brokerTable = "cat_brokers"

// BrokerRepo implements domain.CatalogRepository for brokers.
type BrokerRepo struct {
	*BaseCatalogRepo[*broker.Broker]
}

// NewBrokerRepo creates a new broker repository.
func NewBrokerRepo(txm *postgres.TxManager) *BrokerRepo {
	return &BrokerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			brokerTable,
			[]string{"name", "phone"},
			func() *broker.Broker { return &broker.Broker{} },
		),
	}
}
