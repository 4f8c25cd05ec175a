package handlers

import (
	"ricemill/internal/domain/sale"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewSaleHandler wires sale documents onto the generic handler.
// DO entry lines ride along on the sale payload.
func NewSaleHandler(base *BaseHandler, svc *sale.Service) *CatalogHandler[*sale.Sale, dto.CreateSaleRequest, dto.UpdateSaleRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*sale.Sale, dto.CreateSaleRequest, dto.UpdateSaleRequest]{
		Service:   svc,
		EntityKey: "sales",
		FromCreate: func(req dto.CreateSaleRequest) (*sale.Sale, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdateSaleRequest, s *sale.Sale) error {
			req.Apply(s)
			return nil
		},
	})
}
