package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

type LineStore interface {
	// ListEffectiveLines reads the effective view. It fails when the view
	// does not exist; ListBaseLines is the fallback.
	ListEffectiveLines(ctx context.Context, scope dto.LineScope) ([]*domain.BudgetLine, error)
	ListBaseLines(ctx context.Context, scope dto.LineScope) ([]*domain.BudgetLine, error)
	CreateLine(ctx context.Context, req *dto.CreateLineRequest) (int64, error)
	UpdateLine(ctx context.Context, factID int64, req *dto.UpdateLineRequest) error
	DeleteLine(ctx context.Context, factID int64) error
}

var effectiveLineColumns = []string{
	"fact_id", "budget_id", "pe_level", "pe_id", "category_id", "category_code",
	"uom_code", "uom_name", "qty", "rate", "amount", "notes", "contingency_mode",
	"confidence_code", "line_contingency_pct", "created_at",
	"amount_base", "effective_contingency_pct", "amount_with_contingency",
}

var baseLineColumns = []string{
	"f.fact_id", "f.budget_id", "f.pe_level", "f.pe_id", "f.category_id",
	"c.code AS category_code", "f.uom_code", "u.name AS uom_name", "f.qty", "f.rate",
	"f.amount", "f.notes", "f.contingency_mode", "f.confidence_code",
	"f.contingency_pct AS line_contingency_pct", "f.created_at",
}

func scopeWhere(prefix string, scope dto.LineScope) sq.Eq {
	return sq.Eq{
		prefix + "budget_id": scope.BudgetID,
		prefix + "pe_level":  string(scope.PELevel),
		prefix + "pe_id":     scope.PEID,
	}
}

func (s *store) ListEffectiveLines(ctx context.Context, scope dto.LineScope) ([]*domain.BudgetLine, error) {
	query := builder().Select(effectiveLineColumns...).
		From(viewEffectiveBudget).
		Where(scopeWhere("", scope)).
		OrderBy("created_at DESC", "fact_id DESC")

	var selected []*domain.BudgetLine
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListBaseLines(ctx context.Context, scope dto.LineScope) ([]*domain.BudgetLine, error) {
	query := builder().Select(baseLineColumns...).
		From(tableFacts + " f").
		Join(tableCategories + " c ON c.category_id = f.category_id").
		Join(tableUOMs + " u ON u.uom_code = f.uom_code").
		Where(scopeWhere("f.", scope)).
		OrderBy("f.created_at DESC", "f.fact_id DESC")

	var selected []*domain.BudgetLine
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CreateLine(ctx context.Context, req *dto.CreateLineRequest) (int64, error) {
	qty := decimal.NewFromInt(1)
	if req.Qty != nil {
		qty = *req.Qty
	}

	var mode *string
	if req.ContingencyMode != nil {
		m := string(*req.ContingencyMode)
		mode = &m
	}

	query := builder().Insert(tableFacts).
		Columns(
			"budget_id", "pe_level", "pe_id", "category_id", "uom_code", "qty", "rate",
			"amount", "notes", "confidence_code", "contingency_mode", "contingency_pct",
		).
		Values(
			req.BudgetID, string(req.PELevel), req.PEID, req.CategoryID, req.UOMCode, qty, req.Rate,
			req.Amount, req.Notes, req.ConfidenceCode, mode, req.ContingencyPct,
		).
		Suffix("RETURNING fact_id")

	var id int64
	if err := s.pool.Getx(ctx, &id, query); err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

func (s *store) UpdateLine(ctx context.Context, factID int64, req *dto.UpdateLineRequest) error {
	set := map[string]interface{}{}
	if req.BudgetID != nil {
		set["budget_id"] = *req.BudgetID
	}
	if req.PELevel != nil {
		set["pe_level"] = string(*req.PELevel)
	}
	if req.PEID != nil {
		set["pe_id"] = *req.PEID
	}
	if req.CategoryID != nil {
		set["category_id"] = *req.CategoryID
	}
	if req.UOMCode != nil {
		set["uom_code"] = *req.UOMCode
	}
	if req.Qty != nil {
		set["qty"] = *req.Qty
	}
	if req.Rate != nil {
		set["rate"] = *req.Rate
	}
	if req.Amount != nil {
		set["amount"] = *req.Amount
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.ConfidenceCode != nil {
		set["confidence_code"] = *req.ConfidenceCode
	}
	if req.ContingencyMode != nil {
		set["contingency_mode"] = string(*req.ContingencyMode)
	}
	if req.ContingencyPct != nil {
		set["contingency_pct"] = *req.ContingencyPct
	}

	// nothing to set still has to tell a missing row apart
	if len(set) == 0 {
		set["fact_id"] = sq.Expr("fact_id")
	}

	query := builder().Update(tableFacts).
		SetMap(set).
		Where(sq.Eq{"fact_id": factID})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func (s *store) DeleteLine(ctx context.Context, factID int64) error {
	query := builder().Delete(tableFacts).
		Where(sq.Eq{"fact_id": factID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
