package projectcost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/constructora/cost-api/internal/domain"
	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/constructora/cost-api/internal/pkg/store"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const topMaterialsLimit = 10

type Query struct {
	ProjectID int
	From      time.Time
	To        time.Time
}

type TopMaterial struct {
	Material  string
	TotalCost decimal.Decimal
}

type MonthlyBreakdown struct {
	Month     string
	TotalCost decimal.Decimal
}

type Result struct {
	TotalCost        decimal.Decimal
	TopMaterials     []TopMaterial
	MonthlyBreakdown []MonthlyBreakdown
}

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// GetProjectCosts returns the cost report for one project and date range, or
// (nil, nil) when the project does not exist. The three aggregates are
// independent reads; they run concurrently and are not guaranteed mutually
// consistent under concurrent writes.
func (s *Service) GetProjectCosts(ctx context.Context, query *Query) (*Result, error) {
	if query == nil {
		return nil, constants.ErrNilQuery
	}

	_, err := s.store.GetProjectByID(ctx, query.ProjectID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("store.GetProjectByID: %w", err)
	}

	var (
		totalCost decimal.Decimal
		materials []*domain.TopMaterial
		months    []*domain.MonthlyBreakdown
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		totalCost, err = s.store.GetProjectTotalCost(egCtx, query.ProjectID, query.From, query.To)
		if err != nil {
			return fmt.Errorf("store.GetProjectTotalCost: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		materials, err = s.store.ListTopMaterials(egCtx, query.ProjectID, query.From, query.To, topMaterialsLimit)
		if err != nil {
			return fmt.Errorf("store.ListTopMaterials: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		months, err = s.store.ListMonthlyBreakdown(egCtx, query.ProjectID, query.From, query.To)
		if err != nil {
			return fmt.Errorf("store.ListMonthlyBreakdown: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		TotalCost:        totalCost,
		TopMaterials:     make([]TopMaterial, 0, len(materials)),
		MonthlyBreakdown: make([]MonthlyBreakdown, 0, len(months)),
	}
	for _, m := range materials {
		result.TopMaterials = append(result.TopMaterials, TopMaterial{Material: m.Material, TotalCost: m.TotalCost})
	}
	for _, m := range months {
		result.MonthlyBreakdown = append(result.MonthlyBreakdown, MonthlyBreakdown{Month: m.Month, TotalCost: m.TotalCost})
	}

	return result, nil
}
