package handlers

import (
	"ricemill/internal/domain/party"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewPartyHandler wires the party catalog onto the generic handler.
func NewPartyHandler(base *BaseHandler, svc *party.Service) *CatalogHandler[*party.Party, dto.CreatePartyRequest, dto.UpdatePartyRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*party.Party, dto.CreatePartyRequest, dto.UpdatePartyRequest]{
		Service:   svc,
		EntityKey: "parties",
		FromCreate: func(req dto.CreatePartyRequest) (*party.Party, error) {
			return req.ToEntity(), nil
		},
		ApplyUpdate: func(req dto.UpdatePartyRequest, p *party.Party) error {
			req.Apply(p)
			return nil
		},
	})
}
