package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/pkg/constants"
)

type VendorStore interface {
	ListLineVendors(ctx context.Context, factID int64) ([]*domain.LineVendor, error)
	AddLineVendor(ctx context.Context, link *domain.LineVendorLink) error
	RemoveLineVendor(ctx context.Context, factID, partyID int64) error
	SearchVendors(ctx context.Context, q string, limit uint64) ([]*domain.Party, error)
	CreateParty(ctx context.Context, name, partyType string) (int64, error)
	CreateNote(ctx context.Context, author, body string) (int64, error)
}

var partyColumns = []string{"party_id", "name", "party_type", "is_active"}

func (s *store) ListLineVendors(ctx context.Context, factID int64) ([]*domain.LineVendor, error) {
	query := builder().Select(
		"fv.party_id", "p.name AS party_name", "fv.role", "fv.note_id", "n.body AS note_body").
		From(tableFactVendors + " fv").
		Join(tableParties + " p ON p.party_id = fv.party_id").
		LeftJoin(tableNotes + " n ON n.note_id = fv.note_id").
		Where(sq.Eq{"fv.fact_id": factID}).
		OrderBy("p.name")

	var selected []*domain.LineVendor
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) AddLineVendor(ctx context.Context, link *domain.LineVendorLink) error {
	query := builder().Insert(tableFactVendors).
		Columns("fact_id", "party_id", "role", "note_id").
		Values(link.FactID, link.PartyID, link.Role, link.NoteID).
		Suffix("on conflict (fact_id, party_id) do nothing")

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) RemoveLineVendor(ctx context.Context, factID, partyID int64) error {
	query := builder().Delete(tableFactVendors).
		Where(sq.Eq{"fact_id": factID, "party_id": partyID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) SearchVendors(ctx context.Context, q string, limit uint64) ([]*domain.Party, error) {
	query := builder().Select(partyColumns...).
		From(tableParties).
		Where(sq.Eq{"party_type": constants.PartyTypeVendor, "is_active": true}).
		OrderBy("name").
		Limit(limit)

	if q != "" {
		query = query.Where(sq.ILike{"name": "%" + q + "%"})
	}

	var selected []*domain.Party
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CreateParty(ctx context.Context, name, partyType string) (int64, error) {
	query := builder().Insert(tableParties).
		Columns("name", "party_type", "is_active").
		Values(name, partyType, true).
		Suffix("RETURNING party_id")

	var id int64
	if err := s.pool.Getx(ctx, &id, query); err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

func (s *store) CreateNote(ctx context.Context, author, body string) (int64, error) {
	query := builder().Insert(tableNotes).
		Columns("author", "body").
		Values(author, body).
		Suffix("RETURNING note_id")

	var id int64
	if err := s.pool.Getx(ctx, &id, query); err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}
