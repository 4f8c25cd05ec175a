package handlers

import (
	"ricemill/internal/domain/milling"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewMillingHandler wires milling runs onto the generic handler.
func NewMillingHandler(base *BaseHandler, svc *milling.Service) *CatalogHandler[*milling.Run, dto.CreateMillingRequest, dto.UpdateMillingRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*milling.Run, dto.CreateMillingRequest, dto.UpdateMillingRequest]{
		Service:   svc,
		EntityKey: "millingRuns",
		FromCreate: func(req dto.CreateMillingRequest) (*milling.Run, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdateMillingRequest, run *milling.Run) error {
			req.Apply(run)
			return nil
		},
	})
}
