package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

// reference data

func (s *Store) ListUOMs(_ context.Context) ([]*domain.UOM, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := make([]*domain.UOM, 0, len(s.uoms))
	for _, u := range s.uoms {
		if !u.IsActive {
			continue
		}
		u := u
		selected = append(selected, &u)
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].Code < selected[j].Code })

	return selected, nil
}

func (s *Store) ListConfidencePolicies(_ context.Context) ([]*domain.ConfidencePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := make([]*domain.ConfidencePolicy, 0, len(s.confidence))
	for _, p := range s.confidence {
		if !p.IsActive {
			continue
		}
		p := p
		selected = append(selected, &p)
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].Code < selected[j].Code })

	return selected, nil
}

func (s *Store) UpsertUOMs(_ context.Context, uoms []*domain.UOM) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range uoms {
		s.uoms[u.Code] = *u
	}
	return nil
}

func (s *Store) UpsertConfidencePolicies(_ context.Context, policies []*domain.ConfidencePolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range policies {
		s.confidence[p.Code] = *p
	}
	return nil
}

// budget versions

func (s *Store) ListBudgetVersions(_ context.Context) ([]*domain.BudgetVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := make([]*domain.BudgetVersion, 0, len(s.budgets))
	for _, b := range s.budgets {
		b := b
		selected = append(selected, &b)
	}
	sort.Slice(selected, func(i, j int) bool {
		if !selected[i].AsOf.Equal(selected[j].AsOf) {
			return selected[i].AsOf.After(selected[j].AsOf)
		}
		return selected[i].ID > selected[j].ID
	})

	return selected, nil
}

func (s *Store) CreateBudgetVersion(_ context.Context, version *domain.BudgetVersion) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := *version
	b.ID = s.nextID()
	b.CreatedAt = s.now()
	s.budgets[b.ID] = b

	return b.ID, nil
}

// budget lines

func (s *Store) ListEffectiveLines(ctx context.Context, scope dto.LineScope) ([]*domain.BudgetLine, error) {
	if !s.effectiveView {
		return nil, fmt.Errorf("%w: relation \"landscape.vw_fin_budget_effective\" does not exist", constants.ErrDBUndefinedObject)
	}

	lines, err := s.ListBaseLines(ctx, scope)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range lines {
		var policyDefault *decimal.Decimal
		if l.ConfidenceCode != nil {
			if p, ok := s.confidence[*l.ConfidenceCode]; ok {
				pct := p.DefaultContingencyPct
				policyDefault = &pct
			}
		}
		l.ApplyContingency(policyDefault)
	}

	return lines, nil
}

func (s *Store) ListBaseLines(_ context.Context, scope dto.LineScope) ([]*domain.BudgetLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var selected []*domain.BudgetLine
	for _, f := range s.facts {
		l := f.line
		if l.BudgetID != scope.BudgetID || l.PELevel != scope.PELevel || l.PEID != scope.PEID {
			continue
		}
		l.CategoryCode = s.categories[l.CategoryID].Code
		l.UOMName = s.uoms[l.UOMCode].Name
		l.LineContingencyPct = f.contingencyPct
		selected = append(selected, &l)
	}
	sort.Slice(selected, func(i, j int) bool {
		if !selected[i].CreatedAt.Equal(selected[j].CreatedAt) {
			return selected[i].CreatedAt.After(selected[j].CreatedAt)
		}
		return selected[i].FactID > selected[j].FactID
	})

	return selected, nil
}

func (s *Store) checkLineRefs(budgetID, categoryID int64, uomCode string, confidenceCode *string) error {
	if _, ok := s.budgets[budgetID]; !ok {
		return fkErr("budget %d", budgetID)
	}
	if _, ok := s.categories[categoryID]; !ok {
		return fkErr("category %d", categoryID)
	}
	if _, ok := s.uoms[uomCode]; !ok {
		return fkErr("uom %q", uomCode)
	}
	if confidenceCode != nil {
		if _, ok := s.confidence[*confidenceCode]; !ok {
			return fkErr("confidence %q", *confidenceCode)
		}
	}
	return nil
}

func (s *Store) CreateLine(_ context.Context, req *dto.CreateLineRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !req.PELevel.Valid() {
		return 0, fmt.Errorf("%w: pe_level %q", constants.ErrDBCheckViolation, req.PELevel)
	}
	if err := s.checkLineRefs(req.BudgetID, req.CategoryID, req.UOMCode, req.ConfidenceCode); err != nil {
		return 0, err
	}

	qty := decimal.NewFromInt(1)
	if req.Qty != nil {
		qty = *req.Qty
	}

	id := s.nextID()
	s.facts[id] = &factRow{
		line: domain.BudgetLine{
			FactID:          id,
			BudgetID:        req.BudgetID,
			PELevel:         req.PELevel,
			PEID:            req.PEID,
			CategoryID:      req.CategoryID,
			UOMCode:         req.UOMCode,
			Qty:             qty,
			Rate:            req.Rate,
			Amount:          req.Amount,
			Notes:           req.Notes,
			ContingencyMode: req.ContingencyMode,
			ConfidenceCode:  req.ConfidenceCode,
			CreatedAt:       s.now(),
		},
		contingencyPct: req.ContingencyPct,
	}

	return id, nil
}

func (s *Store) UpdateLine(_ context.Context, factID int64, req *dto.UpdateLineRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.facts[factID]
	if !ok {
		return constants.ErrDBNotFound
	}

	l := f.line
	if req.BudgetID != nil {
		l.BudgetID = *req.BudgetID
	}
	if req.PELevel != nil {
		l.PELevel = *req.PELevel
	}
	if req.PEID != nil {
		l.PEID = *req.PEID
	}
	if req.CategoryID != nil {
		l.CategoryID = *req.CategoryID
	}
	if req.UOMCode != nil {
		l.UOMCode = *req.UOMCode
	}
	if req.Qty != nil {
		l.Qty = *req.Qty
	}
	if req.Rate != nil {
		l.Rate = req.Rate
	}
	if req.Amount != nil {
		l.Amount = req.Amount
	}
	if req.Notes != nil {
		l.Notes = req.Notes
	}
	if req.ConfidenceCode != nil {
		l.ConfidenceCode = req.ConfidenceCode
	}
	if req.ContingencyMode != nil {
		l.ContingencyMode = req.ContingencyMode
	}
	if !l.PELevel.Valid() {
		return fmt.Errorf("%w: pe_level %q", constants.ErrDBCheckViolation, l.PELevel)
	}
	if err := s.checkLineRefs(l.BudgetID, l.CategoryID, l.UOMCode, l.ConfidenceCode); err != nil {
		return err
	}

	f.line = l
	if req.ContingencyPct != nil {
		f.contingencyPct = req.ContingencyPct
	}

	return nil
}

func (s *Store) DeleteLine(_ context.Context, factID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.facts, factID)
	for k := range s.vendors {
		if k.factID == factID {
			delete(s.vendors, k)
		}
	}
	return nil
}

// vendors

func (s *Store) ListLineVendors(_ context.Context, factID int64) ([]*domain.LineVendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var selected []*domain.LineVendor
	for k, link := range s.vendors {
		if k.factID != factID {
			continue
		}
		v := &domain.LineVendor{
			PartyID:   link.PartyID,
			PartyName: s.parties[link.PartyID].Name,
			Role:      link.Role,
			NoteID:    link.NoteID,
		}
		if link.NoteID != nil {
			if n, ok := s.notes[*link.NoteID]; ok {
				body := n.Body
				v.NoteBody = &body
			}
		}
		selected = append(selected, v)
	}
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].PartyName != selected[j].PartyName {
			return selected[i].PartyName < selected[j].PartyName
		}
		return selected[i].PartyID < selected[j].PartyID
	})

	return selected, nil
}

func (s *Store) AddLineVendor(_ context.Context, link *domain.LineVendorLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.facts[link.FactID]; !ok {
		return fkErr("fact %d", link.FactID)
	}
	if _, ok := s.parties[link.PartyID]; !ok {
		return fkErr("party %d", link.PartyID)
	}

	key := vendorKey{factID: link.FactID, partyID: link.PartyID}
	if _, exists := s.vendors[key]; exists {
		return nil
	}
	s.vendors[key] = *link

	return nil
}

func (s *Store) RemoveLineVendor(_ context.Context, factID, partyID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.vendors, vendorKey{factID: factID, partyID: partyID})
	return nil
}

func (s *Store) SearchVendors(_ context.Context, q string, limit uint64) ([]*domain.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q)
	var selected []*domain.Party
	for _, p := range s.parties {
		if p.PartyType != constants.PartyTypeVendor || !p.IsActive {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		p := p
		selected = append(selected, &p)
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].Name < selected[j].Name })
	if limit > 0 && uint64(len(selected)) > limit {
		selected = selected[:limit]
	}

	return selected, nil
}

func (s *Store) CreateParty(_ context.Context, name, partyType string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	s.parties[id] = domain.Party{ID: id, Name: name, PartyType: partyType, IsActive: true}

	return id, nil
}

func (s *Store) CreateNote(_ context.Context, author, body string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	s.notes[id] = domain.Note{ID: id, Author: author, Body: body}

	return id, nil
}
