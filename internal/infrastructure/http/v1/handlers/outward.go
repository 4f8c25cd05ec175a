package handlers

import (
	"ricemill/internal/domain/outward"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewOutwardHandler wires outward dispatches onto the generic handler.
func NewOutwardHandler(base *BaseHandler, svc *outward.Service) *CatalogHandler[*outward.Dispatch, dto.CreateOutwardRequest, dto.UpdateOutwardRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*outward.Dispatch, dto.CreateOutwardRequest, dto.UpdateOutwardRequest]{
		Service:   svc,
		EntityKey: "outwardDispatches",
		FromCreate: func(req dto.CreateOutwardRequest) (*outward.Dispatch, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdateOutwardRequest, d *outward.Dispatch) error {
			req.Apply(d)
			return nil
		},
	})
}
