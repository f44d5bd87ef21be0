// Package xpgx is a thin squirrel-aware convenience layer over pgxpool.
// Connections are acquired per call and released when the rows are closed,
// never held across calls.
package xpgx

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	pool *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (*Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	return &Pool{pool: pool}, nil
}

func (p *Pool) Queryx(ctx context.Context, query squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}

	return p.pool.Query(ctx, sql, args...)
}

func (p *Pool) QueryRowx(ctx context.Context, query squirrel.Sqlizer) (pgx.Row, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}

	return p.pool.QueryRow(ctx, sql, args...), nil
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() {
	p.pool.Close()
}

// Getx runs the query and scans the single result row into a T by db tag.
// Returns pgx.ErrNoRows when nothing matches.
func Getx[T any](ctx context.Context, p *Pool, query squirrel.Sqlizer) (*T, error) {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Selectx runs the query and scans every result row into a T by db tag.
func Selectx[T any](ctx context.Context, p *Pool, query squirrel.Sqlizer) ([]*T, error) {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}
