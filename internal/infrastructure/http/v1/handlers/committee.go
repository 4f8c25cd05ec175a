package handlers

import (
	"ricemill/internal/domain/committee"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewCommitteeHandler wires the committee center catalog onto the generic handler.
func NewCommitteeHandler(base *BaseHandler, svc *committee.Service) *CatalogHandler[*committee.Center, dto.CreateCommitteeRequest, dto.UpdateCommitteeRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*committee.Center, dto.CreateCommitteeRequest, dto.UpdateCommitteeRequest]{
		Service:   svc,
		EntityKey: "committeeCenters",
		FromCreate: func(req dto.CreateCommitteeRequest) (*committee.Center, error) {
			return req.ToEntity(), nil
		},
		ApplyUpdate: func(req dto.UpdateCommitteeRequest, cc *committee.Center) error {
			req.Apply(cc)
			return nil
		},
	})
}
