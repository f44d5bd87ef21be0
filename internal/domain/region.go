package domain

import "github.com/shopspring/decimal"

type Region struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// RegionOverrun is a query result: one project's lifetime spend against its
// budget. OverrunPct is invalid (null) when the budget is zero, since the
// ratio is undefined; that is not the same as a 0% overrun.
type RegionOverrun struct {
	ProjectID  int                 `db:"project_id"`
	Name       string              `db:"name"`
	Budget     decimal.Decimal     `db:"budget"`
	TotalCost  decimal.Decimal     `db:"total_cost"`
	OverrunPct decimal.NullDecimal `db:"overrun_pct"`
}
