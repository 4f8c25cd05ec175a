// Package attendance provides daily attendance records for staff.
package attendance

import (
	"context"
	"time"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
	"ricemill/internal/domain"
)

// Status is the day's attendance outcome.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

// Record is one staff member's attendance for one day.
// The (staff, date) pair is unique.
type Record struct {
	entity.BaseEntity

	StaffID id.ID     `db:"staff_id" json:"staffId"`
	Date    time.Time `db:"date" json:"date"`
	Status  Status    `db:"status" json:"status"`
	Remarks string    `db:"remarks" json:"remarks,omitempty"`
}

// New creates an attendance record with a generated ID.
func New(staffID id.ID, date time.Time, status Status) *Record {
	return &Record{
		BaseEntity: entity.NewBaseEntity(),
		StaffID:    staffID,
		Date:       date,
		Status:     status,
	}
}

// Validate implements entity.Validatable.
func (r *Record) Validate(ctx context.Context) error {
	if id.IsNil(r.StaffID) {
		return apperror.NewValidation("staff is required").
			WithDetail("field", "staffId")
	}
	if r.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	if !r.Status.Valid() {
		return apperror.NewValidation("unknown attendance status").
			WithDetail("field", "status").
			WithDetail("value", string(r.Status))
	}
	return nil
}

// Repository adds staff/month access to the generic catalog contract.
type Repository interface {
	domain.CatalogRepository[*Record]

	// ListByStaffMonth returns the records for one staff member
	// within [from, to)
	ListByStaffMonth(ctx context.Context, staffID id.ID, from, to time.Time) ([]*Record, error)
}

// Service provides attendance business logic.
type Service struct {
	*domain.CatalogService[*Record]
	repo Repository
}

// NewService creates the attendance service.
func NewService(repo Repository, txManager tx.Manager, changes domain.ChangeLog) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Record](repo, txManager, changes, "attendance"),
		repo:           repo,
	}
}

// MonthSheet returns one staff member's records for the month containing day.
func (s *Service) MonthSheet(ctx context.Context, staffID id.ID, day time.Time) ([]*Record, error) {
	from := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.repo.ListByStaffMonth(ctx, staffID, from, to)
}
