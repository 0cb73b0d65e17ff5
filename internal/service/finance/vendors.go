package finance

import (
	"context"
	"fmt"
	"strings"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/spf13/viper"
)

func (s *Service) ListLineVendors(ctx context.Context, factID int64) ([]*domain.LineVendor, error) {
	vendors, err := s.store.ListLineVendors(ctx, factID)
	if err != nil {
		return nil, fmt.Errorf("store.ListLineVendors, fact_id-%d: %w", factID, err)
	}

	return nonNil(vendors), nil
}

// AddLineVendor links a vendor to a budget line. A vendor_name without a
// positive party_id creates the party first; a note is stored before the
// link. The link itself is idempotent on (fact, party).
func (s *Service) AddLineVendor(ctx context.Context, factID int64, req *dto.AddLineVendorRequest) (int64, error) {
	var vendorName string
	if req.VendorName != nil {
		vendorName = strings.TrimSpace(*req.VendorName)
	}
	var partyID int64
	if req.PartyID != nil && *req.PartyID > 0 {
		partyID = *req.PartyID
	}
	if partyID == 0 && vendorName == "" {
		return 0, constants.ErrMissingVendor
	}

	if partyID == 0 {
		id, err := s.store.CreateParty(ctx, vendorName, constants.PartyTypeVendor)
		if err != nil {
			return 0, fmt.Errorf("store.CreateParty, name-%s: %w", vendorName, err)
		}
		partyID = id
	}

	link := &domain.LineVendorLink{
		FactID:  factID,
		PartyID: partyID,
		Role:    constants.DefaultVendorRole,
	}
	if req.Role != nil && strings.TrimSpace(*req.Role) != "" {
		link.Role = strings.TrimSpace(*req.Role)
	}

	if req.Note != nil && strings.TrimSpace(*req.Note) != "" {
		noteID, err := s.store.CreateNote(ctx, noteAuthor(), *req.Note)
		if err != nil {
			return 0, fmt.Errorf("store.CreateNote: %w", err)
		}
		link.NoteID = &noteID
	}

	if err := s.store.AddLineVendor(ctx, link); err != nil {
		return 0, fmt.Errorf("store.AddLineVendor, fact_id-%d, party_id-%d: %w", factID, partyID, err)
	}

	return partyID, nil
}

func (s *Service) RemoveLineVendor(ctx context.Context, factID, partyID int64) error {
	if partyID == 0 {
		return constants.ErrMissingPartyID
	}
	if err := s.store.RemoveLineVendor(ctx, factID, partyID); err != nil {
		return fmt.Errorf("store.RemoveLineVendor, fact_id-%d, party_id-%d: %w", factID, partyID, err)
	}

	return nil
}

func (s *Service) SearchVendors(ctx context.Context, q string) ([]*domain.Party, error) {
	vendors, err := s.store.SearchVendors(ctx, strings.TrimSpace(q), constants.VendorSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("store.SearchVendors: %w", err)
	}

	return nonNil(vendors), nil
}

func (s *Service) CreateVendor(ctx context.Context, req *dto.CreateVendorRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, constants.ErrMissingVendorName
	}

	id, err := s.store.CreateParty(ctx, name, constants.PartyTypeVendor)
	if err != nil {
		return 0, fmt.Errorf("store.CreateParty, name-%s: %w", name, err)
	}

	return id, nil
}

func noteAuthor() string {
	if author := viper.GetString(constants.ViperNoteAuthorKey); author != "" {
		return author
	}
	return constants.DefaultNoteAuthor
}
