package store

import (
	"context"
	"testing"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testScope = dto.LineScope{BudgetID: 1, PELevel: domain.PELevelProject, PEID: 7}

func TestListEffectiveLines(t *testing.T) {
	t.Run("reads the view", func(t *testing.T) {
		pool := &fakePool{}

		_, err := NewStore(pool).ListEffectiveLines(context.Background(), testScope)
		require.NoError(t, err)

		q := pool.last()
		assert.Contains(t, q.sql, "FROM landscape.vw_fin_budget_effective WHERE budget_id = $1 AND pe_id = $2 AND pe_level = $3")
		assert.Contains(t, q.sql, "amount_with_contingency")
		assert.Contains(t, q.sql, "ORDER BY created_at DESC, fact_id DESC")
		assert.Equal(t, []interface{}{int64(1), int64(7), "project"}, q.args)
	})

	t.Run("missing view", func(t *testing.T) {
		pool := &fakePool{err: pgError(pgErrUndefinedTable)}

		_, err := NewStore(pool).ListEffectiveLines(context.Background(), testScope)
		require.ErrorIs(t, err, constants.ErrDBUndefinedObject)
	})
}

func TestListBaseLines(t *testing.T) {
	pool := &fakePool{}

	_, err := NewStore(pool).ListBaseLines(context.Background(), testScope)
	require.NoError(t, err)

	q := pool.last()
	assert.Contains(t, q.sql, "c.code AS category_code")
	assert.Contains(t, q.sql, "u.name AS uom_name")
	assert.Contains(t, q.sql, "f.contingency_pct AS line_contingency_pct")
	assert.Contains(t, q.sql, "FROM landscape.core_fin_fact_budget f JOIN landscape.core_fin_category c ON c.category_id = f.category_id JOIN landscape.core_fin_uom u ON u.uom_code = f.uom_code")
	assert.Contains(t, q.sql, "WHERE f.budget_id = $1 AND f.pe_id = $2 AND f.pe_level = $3")
	assert.NotContains(t, q.sql, "amount_base")
}

func TestCreateLineDefaultsQty(t *testing.T) {
	pool := &fakePool{get: returningID(21)}

	id, err := NewStore(pool).CreateLine(context.Background(), &dto.CreateLineRequest{
		BudgetID:   1,
		PELevel:    domain.PELevelProject,
		PEID:       7,
		CategoryID: 3,
		UOMCode:    "$$$",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), id)

	q := pool.last()
	assert.Contains(t, q.sql, "RETURNING fact_id")
	require.Len(t, q.args, 12)
	qty, ok := q.args[5].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, qty.Equal(decimal.NewFromInt(1)))
}

func TestCreateLineForeignKey(t *testing.T) {
	pool := &fakePool{err: pgError(pgErrForeignKeyViolation)}

	_, err := NewStore(pool).CreateLine(context.Background(), &dto.CreateLineRequest{BudgetID: 1, PELevel: domain.PELevelProject, PEID: 7, CategoryID: 999, UOMCode: "$$$"})
	require.ErrorIs(t, err, constants.ErrDBForeignKey)
}

func TestUpdateLine(t *testing.T) {
	t.Run("present fields only", func(t *testing.T) {
		pool := &fakePool{rowsAffected: 1}
		notes := "revised"

		err := NewStore(pool).UpdateLine(context.Background(), 4, &dto.UpdateLineRequest{Notes: &notes})
		require.NoError(t, err)

		q := pool.last()
		assert.Equal(t, "UPDATE landscape.core_fin_fact_budget SET notes = $1 WHERE fact_id = $2", q.sql)
		assert.Equal(t, []interface{}{"revised", int64(4)}, q.args)
	})

	t.Run("empty patch still detects a missing row", func(t *testing.T) {
		pool := &fakePool{rowsAffected: 0}

		err := NewStore(pool).UpdateLine(context.Background(), 4, &dto.UpdateLineRequest{})
		require.ErrorIs(t, err, constants.ErrDBNotFound)
		assert.Equal(t, "UPDATE landscape.core_fin_fact_budget SET fact_id = fact_id WHERE fact_id = $1", pool.last().sql)
	})
}

func TestDeleteLineIsUnconditional(t *testing.T) {
	pool := &fakePool{rowsAffected: 0}

	require.NoError(t, NewStore(pool).DeleteLine(context.Background(), 404))
	assert.Equal(t, "DELETE FROM landscape.core_fin_fact_budget WHERE fact_id = $1", pool.last().sql)
}
