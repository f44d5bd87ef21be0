package projectcost

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/constructora/cost-api/internal/domain"
	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

type fakeStore struct {
	project    *domain.Project
	projectErr error

	totalCost    decimal.Decimal
	totalCostErr error

	materials    []*domain.TopMaterial
	materialsErr error

	months    []*domain.MonthlyBreakdown
	monthsErr error

	gotLimit int
}

func (f *fakeStore) GetProjectByID(ctx context.Context, id int) (*domain.Project, error) {
	return f.project, f.projectErr
}

func (f *fakeStore) ListProjectsByRegion(ctx context.Context, regionID int) ([]*domain.Project, error) {
	return nil, nil
}

func (f *fakeStore) GetProjectTotalCost(ctx context.Context, projectID int, from, to time.Time) (decimal.Decimal, error) {
	return f.totalCost, f.totalCostErr
}

func (f *fakeStore) ListTopMaterials(ctx context.Context, projectID int, from, to time.Time, limit int) ([]*domain.TopMaterial, error) {
	f.gotLimit = limit
	return f.materials, f.materialsErr
}

func (f *fakeStore) ListMonthlyBreakdown(ctx context.Context, projectID int, from, to time.Time) ([]*domain.MonthlyBreakdown, error) {
	return f.months, f.monthsErr
}

func (f *fakeStore) GetRegionByID(ctx context.Context, id int) (*domain.Region, error) {
	return nil, nil
}

func (f *fakeStore) ListTopOverruns(ctx context.Context, regionID, limit int) ([]*domain.RegionOverrun, error) {
	return nil, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return nil
}

func testQuery() *Query {
	return &Query{
		ProjectID: 1,
		From:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetProjectCosts_NilQuery(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.GetProjectCosts(context.Background(), nil)
	if !errors.Is(err, constants.ErrNilQuery) {
		t.Fatalf("GetProjectCosts(nil) error = %v, want ErrNilQuery", err)
	}
}

func TestGetProjectCosts_UnknownProject(t *testing.T) {
	svc := NewService(&fakeStore{projectErr: constants.ErrDBNotFound})

	result, err := svc.GetProjectCosts(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("GetProjectCosts error = %v, want nil", err)
	}
	if result != nil {
		t.Fatalf("GetProjectCosts result = %+v, want nil for unknown project", result)
	}
}

func TestGetProjectCosts_Aggregates(t *testing.T) {
	st := &fakeStore{
		project:   &domain.Project{ID: 1, Name: "Torre Norte"},
		totalCost: decimal.NewFromInt(1000),
		materials: []*domain.TopMaterial{
			{Material: "Cemento", TotalCost: decimal.NewFromInt(1000)},
		},
		months: []*domain.MonthlyBreakdown{
			{Month: "2023-01", TotalCost: decimal.NewFromInt(1000)},
		},
	}
	svc := NewService(st)

	result, err := svc.GetProjectCosts(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("GetProjectCosts error = %v", err)
	}

	if !result.TotalCost.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("TotalCost = %s, want 1000", result.TotalCost)
	}
	if len(result.TopMaterials) != 1 || result.TopMaterials[0].Material != "Cemento" {
		t.Errorf("TopMaterials = %+v, want one Cemento entry", result.TopMaterials)
	}
	if !result.TopMaterials[0].TotalCost.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("TopMaterials[0].TotalCost = %s, want 1000", result.TopMaterials[0].TotalCost)
	}
	if len(result.MonthlyBreakdown) != 1 || result.MonthlyBreakdown[0].Month != "2023-01" {
		t.Errorf("MonthlyBreakdown = %+v, want one 2023-01 entry", result.MonthlyBreakdown)
	}
	if st.gotLimit != topMaterialsLimit {
		t.Errorf("top materials limit = %d, want %d", st.gotLimit, topMaterialsLimit)
	}
}

func TestGetProjectCosts_ZeroPurchases(t *testing.T) {
	svc := NewService(&fakeStore{project: &domain.Project{ID: 1}})

	result, err := svc.GetProjectCosts(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("GetProjectCosts error = %v", err)
	}
	if result == nil {
		t.Fatal("GetProjectCosts result = nil, want zero-valued result")
	}
	if !result.TotalCost.IsZero() {
		t.Errorf("TotalCost = %s, want 0", result.TotalCost)
	}
	if len(result.TopMaterials) != 0 || len(result.MonthlyBreakdown) != 0 {
		t.Errorf("expected empty lists, got %+v / %+v", result.TopMaterials, result.MonthlyBreakdown)
	}
}

func TestGetProjectCosts_RepositoryErrorPropagates(t *testing.T) {
	boom := errors.New("boom")

	for name, st := range map[string]*fakeStore{
		"existence check": {projectErr: boom},
		"total cost":      {project: &domain.Project{ID: 1}, totalCostErr: boom},
		"top materials":   {project: &domain.Project{ID: 1}, materialsErr: boom},
		"monthly":         {project: &domain.Project{ID: 1}, monthsErr: boom},
	} {
		_, err := NewService(st).GetProjectCosts(context.Background(), testQuery())
		if !errors.Is(err, boom) {
			t.Errorf("%s: error = %v, want wrapped boom", name, err)
		}
	}
}
