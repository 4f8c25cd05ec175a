package catalog_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/attendance"
	"ricemill/internal/infrastructure/storage/postgres"
)

const attendanceTable = "rec_attendance"

// AttendanceRepo implements attendance.Repository.
// The (staff_id, date) pair carries a unique index; double marking a day
// surfaces as a duplicate error.
type AttendanceRepo struct {
	*BaseCatalogRepo[*attendance.Record]
}

// NewAttendanceRepo creates a new attendance repository.
func NewAttendanceRepo(txm *postgres.TxManager) *AttendanceRepo {
	return &AttendanceRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			attendanceTable,
			nil,
			func() *attendance.Record { return &attendance.Record{} },
		),
	}
}

// ListByStaffMonth returns one staff member's records within [from, to).
func (r *AttendanceRepo) ListByStaffMonth(ctx context.Context, staffID id.ID, from, to time.Time) ([]*attendance.Record, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Lt{"date": to}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("date ASC")

	return r.SelectAll(ctx, q)
}
