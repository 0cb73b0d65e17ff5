package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

type recorded struct {
	sql  string
	args []interface{}
}

// fakePool records every statement and answers with canned results.
type fakePool struct {
	queries      []recorded
	err          error
	errOn        string
	rowsAffected int64
	get          func(dst interface{})
	sel          func(dst interface{})
}

var _ Pool = (*fakePool)(nil)

func (p *fakePool) record(sql string, args []interface{}) error {
	p.queries = append(p.queries, recorded{sql: sql, args: args})
	if p.err != nil && (p.errOn == "" || strings.Contains(sql, p.errOn)) {
		return p.err
	}
	return nil
}

func (p *fakePool) recordx(query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	return p.record(sql, args)
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	if err := p.record(sql, args); err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag(fmt.Sprintf("EXEC %d", p.rowsAffected)), nil
}

func (p *fakePool) Execx(_ context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	if err := p.recordx(query); err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", p.rowsAffected)), nil
}

func (p *fakePool) Getx(_ context.Context, dst interface{}, query sq.Sqlizer) error {
	if err := p.recordx(query); err != nil {
		return err
	}
	if p.get != nil {
		p.get(dst)
	}
	return nil
}

func (p *fakePool) Selectx(_ context.Context, dst interface{}, query sq.Sqlizer) error {
	if err := p.recordx(query); err != nil {
		return err
	}
	if p.sel != nil {
		p.sel(dst)
	}
	return nil
}

func (p *fakePool) StdDB() *sql.DB { return nil }

func (p *fakePool) Close() {}

func (p *fakePool) last() recorded {
	if len(p.queries) == 0 {
		return recorded{}
	}
	return p.queries[len(p.queries)-1]
}

func returningID(id int64) func(dst interface{}) {
	return func(dst interface{}) {
		*dst.(*int64) = id
	}
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "test failure " + code}
}
