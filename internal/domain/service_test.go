package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/docnum"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/id"
)

type slipDoc struct {
	entity.Document
	prefix string
}

func (d *slipDoc) Validate(ctx context.Context) error { return nil }
func (d *slipDoc) NumberPrefix() string               { return d.prefix }

type slipRepo struct {
	stored []string

	// failDuplicates makes Create fail with a duplicate error for these
	// numbers, once each
	failDuplicates map[string]bool
}

func (r *slipRepo) Create(ctx context.Context, doc *slipDoc) error {
	n := doc.DocumentNumber()
	if r.failDuplicates[n] {
		delete(r.failDuplicates, n)
		return apperror.NewDuplicate("doc", "number", n)
	}
	r.stored = append(r.stored, n)
	return nil
}

func (r *slipRepo) GetByID(ctx context.Context, entityID id.ID) (*slipDoc, error) {
	return nil, apperror.NewNotFound("doc", entityID.String())
}

func (r *slipRepo) Update(ctx context.Context, doc *slipDoc) error { return nil }

func (r *slipRepo) SetActive(ctx context.Context, entityID id.ID, active bool) error { return nil }

func (r *slipRepo) List(ctx context.Context, filter ListFilter) (ListResult[*slipDoc], error) {
	return ListResult[*slipDoc]{}, nil
}

func (r *slipRepo) Exists(ctx context.Context, entityID id.ID) (bool, error) { return false, nil }

func (r *slipRepo) GetByNumber(ctx context.Context, number string) (*slipDoc, error) {
	return nil, apperror.NewNotFound("doc", number)
}

type passTxManager struct{}

func (passTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newSlipDoc(prefix string, date time.Time) *slipDoc {
	doc := &slipDoc{
		Document: entity.NewDocument(),
		prefix:   prefix,
	}
	doc.Date = date
	return doc
}

func TestDocumentServiceCreateAssignsNumber(t *testing.T) {
	repo := &slipRepo{}
	gen := docnum.New(&docnum.MockLookup{Numbers: []string{"RP-291224-2"}})
	svc := NewDocumentService[*slipDoc](repo, passTxManager{}, nil, gen, "doc")

	date := time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC)
	doc := newSlipDoc("RP", date)

	require.NoError(t, svc.Create(context.Background(), doc))
	assert.Equal(t, "RP-291224-3", doc.DocumentNumber())
	assert.Equal(t, []string{"RP-291224-3"}, repo.stored)
}

func TestDocumentServiceCreateKeepsSuppliedNumber(t *testing.T) {
	repo := &slipRepo{}
	gen := docnum.New(&docnum.MockLookup{})
	svc := NewDocumentService[*slipDoc](repo, passTxManager{}, nil, gen, "doc")

	doc := newSlipDoc("RP", time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC))
	doc.SetDocumentNumber("RP-MANUAL-7")

	require.NoError(t, svc.Create(context.Background(), doc))
	assert.Equal(t, "RP-MANUAL-7", doc.DocumentNumber())
}

func TestDocumentServiceCreateRetriesOnceOnCollision(t *testing.T) {
	lookup := &docnum.MockLookup{}
	repo := &slipRepo{failDuplicates: map[string]bool{"RP-291224-1": true}}
	gen := docnum.New(lookup)
	svc := NewDocumentService[*slipDoc](repo, passTxManager{}, nil, gen, "doc")

	date := time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC)
	doc := newSlipDoc("RP", date)

	// the concurrent writer's row becomes visible before the retry
	lookup.MaxNumberFunc = func(ctx context.Context, pattern string) (string, bool, error) {
		if len(repo.failDuplicates) == 0 {
			return "RP-291224-1", true, nil
		}
		return "", false, nil
	}

	require.NoError(t, svc.Create(context.Background(), doc))
	assert.Equal(t, "RP-291224-2", doc.DocumentNumber())
	assert.Equal(t, []string{"RP-291224-2"}, repo.stored)
}

func TestDocumentServiceCreateDuplicateManualNumberNotRetried(t *testing.T) {
	repo := &slipRepo{failDuplicates: map[string]bool{"RP-MANUAL-1": true}}
	svc := NewDocumentService[*slipDoc](repo, passTxManager{}, nil, docnum.New(&docnum.MockLookup{}), "doc")

	doc := newSlipDoc("RP", time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC))
	doc.SetDocumentNumber("RP-MANUAL-1")

	err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicate(err))
	assert.Empty(t, repo.stored)
}

func TestDocumentServiceCreateNoPrefixSkipsGeneration(t *testing.T) {
	repo := &slipRepo{}
	svc := NewDocumentService[*slipDoc](repo, passTxManager{}, nil, nil, "doc")

	doc := newSlipDoc("", time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC))

	require.NoError(t, svc.Create(context.Background(), doc))
	assert.Equal(t, "", doc.DocumentNumber())
}
