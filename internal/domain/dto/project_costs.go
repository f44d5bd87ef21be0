// Package dto holds the wire shapes of the API. Field names are PascalCase
// on the wire, matching the contract of the system this API replaces.
package dto

import "github.com/shopspring/decimal"

type ProjectCosts struct {
	TotalCost        decimal.Decimal    `json:"TotalCost"`
	TopMaterials     []TopMaterial      `json:"TopMaterials"`
	MonthlyBreakdown []MonthlyBreakdown `json:"MonthlyBreakdown"`
}

type TopMaterial struct {
	Material  string          `json:"Material"`
	TotalCost decimal.Decimal `json:"TotalCost"`
}

type MonthlyBreakdown struct {
	Month     string          `json:"Month"`
	TotalCost decimal.Decimal `json:"TotalCost"`
}
