package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/jackc/pgx/v5"
)

const (
	tableProject  = "project"
	tablePurchase = "purchase"
	tableMaterial = "material"
	tableRegion   = "region"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder for Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
