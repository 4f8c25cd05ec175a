package handlers

import (
	"ricemill/internal/domain/deliveryorder"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// NewDeliveryOrderHandler wires delivery orders onto the generic handler.
// The DO number is entered by the operator, not generated.
func NewDeliveryOrderHandler(base *BaseHandler, svc *deliveryorder.Service) *CatalogHandler[*deliveryorder.DeliveryOrder, dto.CreateDeliveryOrderRequest, dto.UpdateDeliveryOrderRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*deliveryorder.DeliveryOrder, dto.CreateDeliveryOrderRequest, dto.UpdateDeliveryOrderRequest]{
		Service:   svc,
		EntityKey: "deliveryOrders",
		FromCreate: func(req dto.CreateDeliveryOrderRequest) (*deliveryorder.DeliveryOrder, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdateDeliveryOrderRequest, o *deliveryorder.DeliveryOrder) error {
			req.Apply(o)
			return nil
		},
	})
}
