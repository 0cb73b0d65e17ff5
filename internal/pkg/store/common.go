package store

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ougirez/landscape/internal/pkg/constants"
)

const (
	tableUOMs            = "landscape.core_fin_uom"
	tableConfidence      = "landscape.core_fin_confidence_policy"
	tableCategories      = "landscape.core_fin_category"
	tableCategoryUOMs    = "landscape.core_fin_category_uom"
	tablePEApplicability = "landscape.core_fin_pe_applicability"
	tableBudgetVersions  = "landscape.core_fin_budget_version"
	tableFacts           = "landscape.core_fin_fact_budget"
	tableParties         = "landscape.core_party"
	tableNotes           = "landscape.core_note"
	tableFactVendors     = "landscape.core_fin_fact_vendor"
	viewEffectiveBudget  = "landscape.vw_fin_budget_effective"
)

// SQLSTATE codes the store classifies.
const (
	pgErrForeignKeyViolation = "23503"
	pgErrUniqueViolation     = "23505"
	pgErrCheckViolation      = "23514"
	pgErrNotNullViolation    = "23502"
	pgErrUndefinedTable      = "42P01"
	pgErrUndefinedColumn     = "42703"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

var pgCodeMapping = map[string]error{
	pgErrForeignKeyViolation: constants.ErrDBForeignKey,
	pgErrUniqueViolation:     constants.ErrDBUniqueViolation,
	pgErrCheckViolation:      constants.ErrDBCheckViolation,
	pgErrNotNullViolation:    constants.ErrDBNotNullViolation,
	pgErrUndefinedTable:      constants.ErrDBUndefinedObject,
	pgErrUndefinedColumn:     constants.ErrDBUndefinedObject,
}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeMapping[pgErr.Code]; ok {
			return fmt.Errorf("%w: %w", mapped, err)
		}
	}

	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
