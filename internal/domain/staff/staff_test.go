package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/id"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

type stubTxManager struct{}

func (stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubRepo struct {
	records map[id.ID]*Staff
}

func newStubRepo() *stubRepo {
	return &stubRepo{records: make(map[id.ID]*Staff)}
}

func (r *stubRepo) Create(_ context.Context, s *Staff) error {
	r.records[s.ID] = cloneStaff(s)
	return nil
}

func (r *stubRepo) GetByID(_ context.Context, entityID id.ID) (*Staff, error) {
	s, ok := r.records[entityID]
	if !ok {
		return nil, apperror.NewNotFound("staff", entityID.String())
	}
	return cloneStaff(s), nil
}

func (r *stubRepo) Update(_ context.Context, s *Staff) error {
	if _, ok := r.records[s.ID]; !ok {
		return apperror.NewNotFound("staff", s.ID.String())
	}
	r.records[s.ID] = cloneStaff(s)
	return nil
}

func (r *stubRepo) SetActive(_ context.Context, entityID id.ID, active bool) error {
	s, ok := r.records[entityID]
	if !ok {
		return apperror.NewNotFound("staff", entityID.String())
	}
	s.IsActive = active
	return nil
}

func (r *stubRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Staff], error) {
	return domain.ListResult[*Staff]{}, nil
}

func (r *stubRepo) Exists(_ context.Context, entityID id.ID) (bool, error) {
	_, ok := r.records[entityID]
	return ok, nil
}

func cloneStaff(s *Staff) *Staff {
	cp := *s
	cp.SalaryHistory = append(SalaryHistory(nil), s.SalaryHistory...)
	return &cp
}

func salary(s string) types.Qty {
	return types.ParseQty(s)
}

func TestSalaryHistoryAppendedOnChange(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	svc := NewService(repo, stubTxManager{}, nil)

	member := New("Ramesh Kumar", salary("12000"))
	member.Designation = "operator"
	require.NoError(t, svc.Create(ctx, member))

	updated := cloneStaff(member)
	updated.MonthlySalary = salary("14000")
	require.NoError(t, svc.Update(ctx, updated))

	stored, err := svc.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.True(t, stored.MonthlySalary.Equal(salary("14000")))
	require.Len(t, stored.SalaryHistory, 1)
	assert.True(t, stored.SalaryHistory[0].Salary.Equal(salary("12000")))
	assert.Equal(t, member.JoinedOn, stored.SalaryHistory[0].From)
	assert.False(t, stored.SalaryHistory[0].To.IsZero())
}

func TestSalaryHistoryChainsPeriods(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	svc := NewService(repo, stubTxManager{}, nil)

	member := New("Sita Devi", salary("10000"))
	require.NoError(t, svc.Create(ctx, member))

	for _, next := range []string{"11000", "12500"} {
		current, err := svc.GetByID(ctx, member.ID)
		require.NoError(t, err)
		current.MonthlySalary = salary(next)
		require.NoError(t, svc.Update(ctx, current))
	}

	stored, err := svc.GetByID(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, stored.SalaryHistory, 2)
	assert.True(t, stored.SalaryHistory[0].Salary.Equal(salary("10000")))
	assert.True(t, stored.SalaryHistory[1].Salary.Equal(salary("11000")))
	// Periods chain: the second revision starts where the first ended.
	assert.Equal(t, stored.SalaryHistory[0].To, stored.SalaryHistory[1].From)
}

func TestSalaryHistoryUntouchedWhenSalaryUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	svc := NewService(repo, stubTxManager{}, nil)

	member := New("Mohan Lal", salary("9000"))
	require.NoError(t, svc.Create(ctx, member))

	updated := cloneStaff(member)
	updated.Designation = "supervisor"
	require.NoError(t, svc.Update(ctx, updated))

	stored, err := svc.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "supervisor", stored.Designation)
	assert.Empty(t, stored.SalaryHistory)
}

func TestNegativeSalaryRejected(t *testing.T) {
	svc := NewService(newStubRepo(), stubTxManager{}, nil)

	member := New("Bad Record", salary("-1"))
	err := svc.Create(context.Background(), member)
	require.Error(t, err)
	assert.True(t, apperror.IsAppError(err))
}
