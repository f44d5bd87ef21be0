package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID        int             `db:"id"`
	Name      string          `db:"name"`
	RegionID  int             `db:"region_id"`
	Budget    decimal.Decimal `db:"budget"`
	StartDate time.Time       `db:"start_date"`
	EndDate   *time.Time      `db:"end_date"`
}

// TopMaterial is a query result, not a persisted row: one material's summed
// purchase cost for a project within a date range.
type TopMaterial struct {
	Material  string          `db:"material"`
	TotalCost decimal.Decimal `db:"total_cost"`
}

// MonthlyBreakdown is a query result: summed purchase cost per calendar
// month, labeled YYYY-MM.
type MonthlyBreakdown struct {
	Month     string          `db:"month"`
	TotalCost decimal.Decimal `db:"total_cost"`
}
