package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/constructora/cost-api/internal/domain"
	"github.com/constructora/cost-api/internal/pkg/logger"
	"github.com/constructora/cost-api/internal/pkg/store/xpgx"
)

var regionColumns = []string{"id", "name"}

func (s *store) GetRegionByID(ctx context.Context, id int) (*domain.Region, error) {
	query := builder().Select(regionColumns...).
		From(tableRegion).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Region](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// ListTopOverruns ranks a region's projects by budget overrun. Sums are
// lifetime, not date-scoped. overrun_pct is null when the budget is zero,
// and null sorts after every numeric value regardless of sign. Projects with
// no purchases at all still appear with a zero total.
func (s *store) ListTopOverruns(ctx context.Context, regionID, limit int) ([]*domain.RegionOverrun, error) {
	query := builder().Select(
		"p.id as project_id",
		"p.name as name",
		"p.budget as budget",
		"coalesce(cs.total_cost, 0) as total_cost",
		`case when p.budget > 0
			then round((coalesce(cs.total_cost, 0) - p.budget) / p.budget * 100, 2)
			else null
		end as overrun_pct`).
		From(tableProject + " p").
		JoinClause(`left join (
			select project_id, sum(total_cost) as total_cost
			from ` + tablePurchase + `
			group by project_id
		) cs on cs.project_id = p.id`).
		Where(sq.Eq{"p.region_id": regionID}).
		OrderBy("overrun_pct desc nulls last").
		Limit(uint64(limit))

	selected, err := xpgx.Selectx[domain.RegionOverrun](ctx, s.pool, query)
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, err
	}

	return selected, nil
}
