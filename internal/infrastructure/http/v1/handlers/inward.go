package handlers

import (
	"ricemill/internal/domain/inward"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewInwardHandler wires inward receipts onto the generic handler.
func NewInwardHandler(base *BaseHandler, svc *inward.Service) *CatalogHandler[*inward.Receipt, dto.CreateInwardRequest, dto.UpdateInwardRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*inward.Receipt, dto.CreateInwardRequest, dto.UpdateInwardRequest]{
		Service:   svc,
		EntityKey: "inwardReceipts",
		FromCreate: func(req dto.CreateInwardRequest) (*inward.Receipt, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdateInwardRequest, rec *inward.Receipt) error {
			req.Apply(rec)
			return nil
		},
	})
}
