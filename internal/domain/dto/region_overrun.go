package dto

import "github.com/shopspring/decimal"

type RegionOverrun struct {
	ProjectID  int              `json:"ProjectId"`
	Name       string           `json:"Name"`
	Budget     decimal.Decimal  `json:"Budget"`
	TotalCost  decimal.Decimal  `json:"TotalCost"`
	OverrunPct *decimal.Decimal `json:"OverrunPct"`
}
