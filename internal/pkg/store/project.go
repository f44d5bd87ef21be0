package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/constructora/cost-api/internal/domain"
	"github.com/constructora/cost-api/internal/pkg/store/xpgx"
	"github.com/shopspring/decimal"
)

var projectColumns = []string{"id", "name", "region_id", "budget", "start_date", "end_date"}

func (s *store) GetProjectByID(ctx context.Context, id int) (*domain.Project, error) {
	query := builder().Select(projectColumns...).
		From(tableProject).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Project](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListProjectsByRegion(ctx context.Context, regionID int) ([]*domain.Project, error) {
	query := builder().Select(projectColumns...).
		From(tableProject).
		Where(sq.Eq{"region_id": regionID})

	return xpgx.Selectx[domain.Project](ctx, s.pool, query)
}

// GetProjectTotalCost sums purchase.total_cost over the inclusive date range.
// Returns zero, not an error, when no purchases match.
func (s *store) GetProjectTotalCost(ctx context.Context, projectID int, from, to time.Time) (decimal.Decimal, error) {
	query := builder().Select("coalesce(sum(total_cost), 0)").
		From(tablePurchase).
		Where(sq.Eq{"project_id": projectID}).
		Where(sq.Expr("purchase_date between ? and ?", from, to))

	row, err := s.pool.QueryRowx(ctx, query)
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// ListTopMaterials ranks materials by summed purchase cost within the range,
// descending. Inner join semantics: a material with no purchases in range
// never appears.
func (s *store) ListTopMaterials(ctx context.Context, projectID int, from, to time.Time, limit int) ([]*domain.TopMaterial, error) {
	query := builder().Select("m.name as material", "sum(p.total_cost) as total_cost").
		From(tablePurchase + " p").
		Join(tableMaterial + " m on m.id = p.material_id").
		Where(sq.Eq{"p.project_id": projectID}).
		Where(sq.Expr("p.purchase_date between ? and ?", from, to)).
		GroupBy("m.name").
		OrderBy("total_cost desc").
		Limit(uint64(limit))

	return xpgx.Selectx[domain.TopMaterial](ctx, s.pool, query)
}

// ListMonthlyBreakdown sums purchase cost per calendar month of the stored
// purchase_date, labeled YYYY-MM, ascending.
func (s *store) ListMonthlyBreakdown(ctx context.Context, projectID int, from, to time.Time) ([]*domain.MonthlyBreakdown, error) {
	query := builder().Select("to_char(purchase_date, 'YYYY-MM') as month", "sum(total_cost) as total_cost").
		From(tablePurchase).
		Where(sq.Eq{"project_id": projectID}).
		Where(sq.Expr("purchase_date between ? and ?", from, to)).
		GroupBy("month").
		OrderBy("month")

	return xpgx.Selectx[domain.MonthlyBreakdown](ctx, s.pool, query)
}
