package store

import (
	"context"
	"testing"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLineVendors(t *testing.T) {
	pool := &fakePool{}

	_, err := NewStore(pool).ListLineVendors(context.Background(), 8)
	require.NoError(t, err)

	q := pool.last()
	assert.Contains(t, q.sql, "LEFT JOIN landscape.core_note n ON n.note_id = fv.note_id")
	assert.Contains(t, q.sql, "WHERE fv.fact_id = $1 ORDER BY p.name")
	assert.Equal(t, []interface{}{int64(8)}, q.args)
}

func TestAddLineVendorIsIdempotent(t *testing.T) {
	pool := &fakePool{}
	noteID := int64(3)

	err := NewStore(pool).AddLineVendor(context.Background(), &domain.LineVendorLink{FactID: 8, PartyID: 2, Role: "vendor", NoteID: &noteID})
	require.NoError(t, err)

	q := pool.last()
	assert.Equal(t, "INSERT INTO landscape.core_fin_fact_vendor (fact_id,party_id,role,note_id) VALUES ($1,$2,$3,$4) on conflict (fact_id, party_id) do nothing", q.sql)
	assert.Equal(t, []interface{}{int64(8), int64(2), "vendor", &noteID}, q.args)
}

func TestRemoveLineVendor(t *testing.T) {
	pool := &fakePool{}

	require.NoError(t, NewStore(pool).RemoveLineVendor(context.Background(), 8, 2))
	q := pool.last()
	assert.Equal(t, "DELETE FROM landscape.core_fin_fact_vendor WHERE fact_id = $1 AND party_id = $2", q.sql)
	assert.Equal(t, []interface{}{int64(8), int64(2)}, q.args)
}

func TestSearchVendors(t *testing.T) {
	t.Run("with query", func(t *testing.T) {
		pool := &fakePool{}

		_, err := NewStore(pool).SearchVendors(context.Background(), "acme", constants.VendorSearchLimit)
		require.NoError(t, err)

		q := pool.last()
		assert.Equal(t, "SELECT party_id, name, party_type, is_active FROM landscape.core_party WHERE is_active = $1 AND party_type = $2 AND name ILIKE $3 ORDER BY name LIMIT 50", q.sql)
		assert.Equal(t, []interface{}{true, "vendor", "%acme%"}, q.args)
	})

	t.Run("blank query lists all vendors", func(t *testing.T) {
		pool := &fakePool{}

		_, err := NewStore(pool).SearchVendors(context.Background(), "", constants.VendorSearchLimit)
		require.NoError(t, err)
		assert.NotContains(t, pool.last().sql, "ILIKE")
	})
}

func TestCreatePartyAndNote(t *testing.T) {
	pool := &fakePool{get: returningID(77)}
	s := NewStore(pool)

	id, err := s.CreateParty(context.Background(), "Acme Grading", constants.PartyTypeVendor)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	assert.Equal(t, "INSERT INTO landscape.core_party (name,party_type,is_active) VALUES ($1,$2,$3) RETURNING party_id", pool.last().sql)

	id, err = s.CreateNote(context.Background(), "system", "bid received")
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	assert.Equal(t, []interface{}{"system", "bid received"}, pool.last().args)
}
