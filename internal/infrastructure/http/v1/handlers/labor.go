package handlers

import (
	"ricemill/internal/domain/labor"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewLaborHandler wires labor cost documents onto the generic handler.
func NewLaborHandler(base *BaseHandler, svc *labor.Service) *CatalogHandler[*labor.Cost, dto.CreateLaborRequest, dto.UpdateLaborRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*labor.Cost, dto.CreateLaborRequest, dto.UpdateLaborRequest]{
		Service:   svc,
		EntityKey: "laborCosts",
		FromCreate: func(req dto.CreateLaborRequest) (*labor.Cost, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdateLaborRequest, cost *labor.Cost) error {
			req.Apply(cost)
			return nil
		},
	})
}
