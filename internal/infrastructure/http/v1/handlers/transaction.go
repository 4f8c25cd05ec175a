package handlers

import (
	"ricemill/internal/domain/finance"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewTransactionHandler wires payment/receipt transactions onto the generic handler.
func NewTransactionHandler(base *BaseHandler, svc *finance.Service) *CatalogHandler[*finance.Transaction, dto.CreateTransactionRequest, dto.UpdateTransactionRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*finance.Transaction, dto.CreateTransactionRequest, dto.UpdateTransactionRequest]{
		Service:   svc,
		EntityKey: "transactions",
		FromCreate: func(req dto.CreateTransactionRequest) (*finance.Transaction, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdateTransactionRequest, t *finance.Transaction) error {
			req.Apply(t)
			return nil
		},
	})
}
