// Package staff provides the staff catalog with salary history tracking.
package staff

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/tx"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

// SalaryRevision is one closed period of a past salary.
type SalaryRevision struct {
	Salary types.Qty `json:"salary"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
}

// SalaryHistory is the ordered list of past salary periods,
// stored as a jsonb column.
type SalaryHistory []SalaryRevision

// Value implements driver.Valuer.
func (h SalaryHistory) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner.
func (h *SalaryHistory) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*h = nil
		return nil
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported salary history source type %T", src)
	}
}

// Staff is a mill employee.
type Staff struct {
	entity.Catalog

	Designation   string        `db:"designation" json:"designation,omitempty"`
	Phone         string        `db:"phone" json:"phone,omitempty"`
	MonthlySalary types.Qty     `db:"monthly_salary" json:"monthlySalary"`
	JoinedOn      time.Time     `db:"joined_on" json:"joinedOn"`
	SalaryHistory SalaryHistory `db:"salary_history" json:"salaryHistory"`
}

// New creates a staff member with a generated ID.
func New(name string, salary types.Qty) *Staff {
	return &Staff{
		Catalog:       entity.NewCatalog(name),
		MonthlySalary: salary,
		JoinedOn:      time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (s *Staff) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}
	if s.MonthlySalary.IsNegative() {
		return apperror.NewValidation("monthly salary cannot be negative").
			WithDetail("field", "monthlySalary")
	}
	return nil
}

// Service provides staff business logic.
type Service = domain.CatalogService[*Staff]

// NewService creates the staff service and wires the salary history hook:
// when an update changes the salary, the previous salary with its effective
// period is appended to the history before the new value is stored.
func NewService(repo domain.CatalogRepository[*Staff], txManager tx.Manager, changes domain.ChangeLog) *Service {
	svc := domain.NewCatalogService(repo, txManager, changes, "staff")
	svc.Hooks().On(domain.BeforeUpdate, salaryHistoryHook(repo))
	return svc
}

// salaryHistoryHook closes over the repository to compare the incoming
// salary against the stored one.
func salaryHistoryHook(repo domain.CatalogRepository[*Staff]) domain.Hook[*Staff] {
	return func(ctx context.Context, incoming *Staff) error {
		current, err := repo.GetByID(ctx, incoming.ID)
		if err != nil {
			return err
		}
		if current.MonthlySalary.Equal(incoming.MonthlySalary) {
			return nil
		}

		from := current.JoinedOn
		if n := len(current.SalaryHistory); n > 0 {
			from = current.SalaryHistory[n-1].To
		}
		incoming.SalaryHistory = append(current.SalaryHistory, SalaryRevision{
			Salary: current.MonthlySalary,
			From:   from,
			To:     time.Now().UTC(),
		})
		return nil
	}
}
