package store

import (
	"context"
	"testing"
	"time"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReferenceData(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool)

	_, err := s.ListUOMs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SELECT uom_code, name, uom_type, is_active FROM landscape.core_fin_uom WHERE is_active = $1 ORDER BY uom_code", pool.last().sql)

	_, err = s.ListConfidencePolicies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SELECT confidence_code, name, default_contingency_pct, is_active FROM landscape.core_fin_confidence_policy WHERE is_active = $1 ORDER BY confidence_code", pool.last().sql)
}

func TestUpsertReferenceData(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool)

	require.NoError(t, s.UpsertUOMs(context.Background(), nil))
	assert.Empty(t, pool.queries)

	require.NoError(t, s.UpsertUOMs(context.Background(), []*domain.UOM{
		{Code: "$$$", Name: "Lump Sum", UOMType: "currency", IsActive: true},
		{Code: "$/Lot", Name: "Per Lot", UOMType: "count", IsActive: true},
	}))
	q := pool.last()
	assert.Contains(t, q.sql, "VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")
	assert.Contains(t, q.sql, "on conflict (uom_code)")
	assert.Len(t, q.args, 8)

	require.NoError(t, s.UpsertConfidencePolicies(context.Background(), []*domain.ConfidencePolicy{
		{Code: "A", Name: "Contract / Bid", DefaultContingencyPct: decimal.NewFromInt(5), IsActive: true},
	}))
	assert.Contains(t, pool.last().sql, "default_contingency_pct = excluded.default_contingency_pct")
}

func TestBudgetVersions(t *testing.T) {
	pool := &fakePool{get: returningID(1)}
	s := NewStore(pool)

	_, err := s.ListBudgetVersions(context.Background())
	require.NoError(t, err)
	assert.Contains(t, pool.last().sql, "ORDER BY as_of DESC, budget_id DESC")

	asOf := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	id, err := s.CreateBudgetVersion(context.Background(), &domain.BudgetVersion{Name: "Baseline", AsOf: asOf, Status: "draft"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, []interface{}{"Baseline", asOf, "draft"}, pool.last().args)
}
