package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase rows are written by an external system; this API only reads them.
// TotalCost is the authoritative figure for aggregation and is never
// recomputed from Quantity×UnitCost.
type Purchase struct {
	ID           int64           `db:"id"`
	ProjectID    int             `db:"project_id"`
	MaterialID   int             `db:"material_id"`
	SupplierID   int             `db:"supplier_id"`
	PurchaseDate time.Time       `db:"purchase_date"`
	Quantity     decimal.Decimal `db:"quantity"`
	UnitCost     decimal.Decimal `db:"unit_cost"`
	TotalCost    decimal.Decimal `db:"total_cost"`
}

type Material struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}
