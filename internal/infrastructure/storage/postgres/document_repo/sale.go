package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ricemill/internal/core/id"
	"ricemill/internal/domain"
	"ricemill/internal/domain/sale"
	"ricemill/internal/infrastructure/storage/postgres"
)

const (
	saleTable        = "doc_sales"
	saleDoEntryTable = "doc_sale_do_entries"
)

var doEntryCols = postgres.ExtractDBColumns[sale.DoEntry]()

// SaleRepo implements sale.Repository. DO line items live in a child
// table and are replaced wholesale on every write.
type SaleRepo struct {
	*BaseDocumentRepo[*sale.Sale]
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txm *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			saleTable,
			func() *sale.Sale { return &sale.Sale{} },
		),
	}
}

// Create inserts the sale and its line items.
func (r *SaleRepo) Create(ctx context.Context, s *sale.Sale) error {
	if err := r.BaseDocumentRepo.Create(ctx, s); err != nil {
		return err
	}
	return r.saveLines(ctx, s, false)
}

// Update saves the sale and replaces its line items.
func (r *SaleRepo) Update(ctx context.Context, s *sale.Sale) error {
	if err := r.BaseDocumentRepo.Update(ctx, s); err != nil {
		return err
	}
	return r.saveLines(ctx, s, true)
}

// GetByID retrieves the sale with its line items.
func (r *SaleRepo) GetByID(ctx context.Context, entityID id.ID) (*sale.Sale, error) {
	s, err := r.BaseDocumentRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if err := r.attachLines(ctx, []*sale.Sale{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByNumber retrieves the sale with its line items.
func (r *SaleRepo) GetByNumber(ctx context.Context, number string) (*sale.Sale, error) {
	s, err := r.BaseDocumentRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := r.attachLines(ctx, []*sale.Sale{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves a page of sales with their line items.
func (r *SaleRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*sale.Sale], error) {
	result, err := r.BaseDocumentRepo.List(ctx, filter)
	if err != nil {
		return result, err
	}
	if err := r.attachLines(ctx, result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// ListAll returns every active sale with its line items, for reconciliation.
func (r *SaleRepo) ListAll(ctx context.Context) ([]*sale.Sale, error) {
	sales, err := r.ListAllActive(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.attachLines(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SaleRepo) saveLines(ctx context.Context, s *sale.Sale, replace bool) error {
	querier := r.Querier(ctx)

	if replace {
		sql, args, err := r.Builder().
			Delete(saleDoEntryTable).
			Where(squirrel.Eq{"sale_id": s.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete lines: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("delete lines: %w", err)
		}
	}

	if len(s.DoEntries) == 0 {
		return nil
	}

	ins := r.Builder().
		Insert(saleDoEntryTable).
		Columns(doEntryCols...)
	for i := range s.DoEntries {
		e := &s.DoEntries[i]
		if id.IsNil(e.ID) {
			e.ID = id.New()
		}
		e.SaleID = s.ID
		ins = ins.Values(e.ID, e.SaleID, e.DoNumber, e.DhanMota, e.DhanPatla, e.DhanSarna)
	}

	sql, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}
	return nil
}

func (r *SaleRepo) attachLines(ctx context.Context, sales []*sale.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	ids := make([]id.ID, len(sales))
	byID := make(map[id.ID]*sale.Sale, len(sales))
	for i, s := range sales {
		ids[i] = s.ID
		byID[s.ID] = s
		s.DoEntries = nil
	}

	sql, args, err := r.Builder().
		Select(doEntryCols...).
		From(saleDoEntryTable).
		Where(squirrel.Eq{"sale_id": ids}).
		OrderBy("sale_id, id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build select lines: %w", err)
	}

	var entries []sale.DoEntry
	if err := pgxscan.Select(ctx, r.Querier(ctx), &entries, sql, args...); err != nil {
		return fmt.Errorf("select lines: %w", err)
	}

	for _, e := range entries {
		if s, ok := byID[e.SaleID]; ok {
			s.DoEntries = append(s.DoEntries, e)
		}
	}
	return nil
}
