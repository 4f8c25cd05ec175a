package handlers

import (
	"github.com/gin-gonic/gin"

	"ricemill/internal/domain/staff"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// StaffHandler adds the salary history view on top of the generic CRUD
// surface. Salary history itself is maintained by the service's update
// hook, not here.
type StaffHandler struct {
	*CatalogHandler[*staff.Staff, dto.CreateStaffRequest, dto.UpdateStaffRequest]
	service *staff.Service
}

// NewStaffHandler wires the staff catalog onto the generic handler.
func NewStaffHandler(base *BaseHandler, svc *staff.Service) *StaffHandler {
	crud := NewCatalogHandler(base, CatalogHandlerConfig[*staff.Staff, dto.CreateStaffRequest, dto.UpdateStaffRequest]{
		Service:   svc,
		EntityKey: "staff",
		FromCreate: func(req dto.CreateStaffRequest) (*staff.Staff, error) {
			return req.ToEntity(), nil
		},
		ApplyUpdate: func(req dto.UpdateStaffRequest, s *staff.Staff) error {
			req.Apply(s)
			return nil
		},
	})
	return &StaffHandler{CatalogHandler: crud, service: svc}
}

// SalaryHistory handles GET /catalog/staff/:id/salary-history.
func (h *StaffHandler) SalaryHistory(c *gin.Context) {
	staffID, ok := h.paramID(c)
	if !ok {
		return
	}

	member, err := h.service.GetByID(c.Request.Context(), staffID)
	if err != nil {
		h.Error(c, err)
		return
	}

	history := member.SalaryHistory
	if history == nil {
		history = staff.SalaryHistory{}
	}
	h.OK(c, gin.H{
		"currentSalary": member.MonthlySalary,
		"salaryHistory": history,
	})
}
