package handlers

import (
	"ricemill/internal/domain/broker"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewBrokerHandler wires the broker catalog onto the generic handler.
func NewBrokerHandler(base *BaseHandler, svc *broker.Service) *CatalogHandler[*broker.Broker, dto.CreateBrokerRequest, dto.UpdateBrokerRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*broker.Broker, dto.CreateBrokerRequest, dto.UpdateBrokerRequest]{
		Service:   svc,
		EntityKey: "brokers",
		FromCreate: func(req dto.CreateBrokerRequest) (*broker.Broker, error) {
			return req.ToEntity(), nil
		},
		ApplyUpdate: func(req dto.UpdateBrokerRequest, b *broker.Broker) error {
			req.Apply(b)
			return nil
		},
	})
}
