package store

import (
	"context"
	"time"

	"github.com/constructora/cost-api/internal/domain"
	"github.com/constructora/cost-api/internal/pkg/store/xpgx"
	"github.com/shopspring/decimal"
)

type Pool = xpgx.Pool

type Store interface {
	GetProjectByID(ctx context.Context, id int) (*domain.Project, error)
	ListProjectsByRegion(ctx context.Context, regionID int) ([]*domain.Project, error)
	GetProjectTotalCost(ctx context.Context, projectID int, from, to time.Time) (decimal.Decimal, error)
	ListTopMaterials(ctx context.Context, projectID int, from, to time.Time, limit int) ([]*domain.TopMaterial, error)
	ListMonthlyBreakdown(ctx context.Context, projectID int, from, to time.Time) ([]*domain.MonthlyBreakdown, error)

	GetRegionByID(ctx context.Context, id int) (*domain.Region, error)
	ListTopOverruns(ctx context.Context, regionID, limit int) ([]*domain.RegionOverrun, error)

	Ping(ctx context.Context) error
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}

// Ping does a trivial round-trip, used by the liveness probe and at startup.
func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
