package handlers

import (
	"ricemill/internal/domain/purchase"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewPurchaseHandler wires purchase documents onto the generic handler.
func NewPurchaseHandler(base *BaseHandler, svc *purchase.Service) *CatalogHandler[*purchase.Purchase, dto.CreatePurchaseRequest, dto.UpdatePurchaseRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*purchase.Purchase, dto.CreatePurchaseRequest, dto.UpdatePurchaseRequest]{
		Service:   svc,
		EntityKey: "purchases",
		FromCreate: func(req dto.CreatePurchaseRequest) (*purchase.Purchase, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdatePurchaseRequest, p *purchase.Purchase) error {
			req.Apply(p)
			return nil
		},
	})
}
