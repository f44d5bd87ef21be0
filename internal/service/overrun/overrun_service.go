package overrun

import (
	"context"
	"fmt"

	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/constructora/cost-api/internal/pkg/store"
	"github.com/shopspring/decimal"
)

type Query struct {
	RegionID int
	Limit    int
}

type Result struct {
	ProjectID  int
	Name       string
	Budget     decimal.Decimal
	TotalCost  decimal.Decimal
	OverrunPct *decimal.Decimal
}

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// GetTopOverruns maps the ranking rows one to one, preserving a null overrun
// percentage. An empty result is returned as-is; treating it as not-found is
// the api layer's concern.
func (s *Service) GetTopOverruns(ctx context.Context, query *Query) ([]*Result, error) {
	if query == nil {
		return nil, constants.ErrNilQuery
	}

	overruns, err := s.store.ListTopOverruns(ctx, query.RegionID, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("store.ListTopOverruns: %w", err)
	}

	results := make([]*Result, 0, len(overruns))
	for _, o := range overruns {
		result := &Result{
			ProjectID: o.ProjectID,
			Name:      o.Name,
			Budget:    o.Budget,
			TotalCost: o.TotalCost,
		}
		if o.OverrunPct.Valid {
			pct := o.OverrunPct.Decimal
			result.OverrunPct = &pct
		}
		results = append(results, result)
	}

	return results, nil
}
