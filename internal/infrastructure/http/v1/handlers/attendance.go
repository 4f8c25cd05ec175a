package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/id"
	"ricemill/internal/domain/attendance"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// AttendanceHandler adds the month sheet on top of the generic CRUD surface.
type AttendanceHandler struct {
	*CatalogHandler[*attendance.Record, dto.CreateAttendanceRequest, dto.UpdateAttendanceRequest]
	service *attendance.Service
}

// NewAttendanceHandler wires attendance records onto the generic handler.
func NewAttendanceHandler(base *BaseHandler, svc *attendance.Service) *AttendanceHandler {
	crud := NewCatalogHandler(base, CatalogHandlerConfig[*attendance.Record, dto.CreateAttendanceRequest, dto.UpdateAttendanceRequest]{
		Service:   svc,
		EntityKey: "attendance",
		FromCreate: func(req dto.CreateAttendanceRequest) (*attendance.Record, error) {
			return req.ToEntity()
		},
		ApplyUpdate: func(req dto.UpdateAttendanceRequest, rec *attendance.Record) error {
			req.Apply(rec)
			return nil
		},
	})
	return &AttendanceHandler{CatalogHandler: crud, service: svc}
}

// MonthSheet handles GET /attendance/month-sheet?staffId=...&month=YYYY-MM.
// Month defaults to the current month.
func (h *AttendanceHandler) MonthSheet(c *gin.Context) {
	staffID, err := id.Parse(c.Query("staffId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid staff id").WithDetail("field", "staffId"))
		return
	}

	day := time.Now().UTC()
	if month := c.Query("month"); month != "" {
		day, err = time.Parse("2006-01", month)
		if err != nil {
			h.Error(c, apperror.NewValidation("month must be YYYY-MM").WithDetail("field", "month"))
			return
		}
	}

	records, err := h.service.MonthSheet(c.Request.Context(), staffID, day)
	if err != nil {
		h.Error(c, err)
		return
	}
	if records == nil {
		records = []*attendance.Record{}
	}
	h.OK(c, gin.H{"attendance": records})
}
