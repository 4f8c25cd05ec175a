package catalog_repo

import (
	"ricemill/internal/domain/staff"
	"ricemill/internal/infrastructure/storage/postgres"
)

const staffTable = "cat_staff"

// StaffRepo implements domain.CatalogRepository for staff members.
// The salary_history column is jsonb; staff.SalaryHistory handles the
// encoding via Valuer/Scanner.
type StaffRepo struct {
	*BaseCatalogRepo[*staff.Staff]
}

// NewStaffRepo creates a new staff repository.
func NewStaffRepo(txm *postgres.TxManager) *StaffRepo {
	return &StaffRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			staffTable,
			[]string{"name", "designation"},
			func() *staff.Staff { return &staff.Staff{} },
		),
	}
}
