package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vuminh/product-api/internal/storage/db"
)

// NopDB satisfies db.DB without a database. WithTx runs the function
// directly, so services backed by in-memory repositories can be
// exercised in tests.
type NopDB struct{}

var _ db.DB = NopDB{}

func (NopDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (NopDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (NopDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (n NopDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	return txFunc(n)
}
