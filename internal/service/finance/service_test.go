package finance

import (
	"context"
	"testing"
	"time"

	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/store/memstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newSeededService(t *testing.T, opts ...memstore.Option) *Service {
	t.Helper()
	svc := NewService(memstore.New(opts...))
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)
	return svc
}

func categoryByCode(t *testing.T, svc *Service, code string) *domain.CategoryView {
	t.Helper()
	views, err := svc.ListCategories(context.Background(), "")
	require.NoError(t, err)
	for _, v := range views {
		if v.Code == code {
			return v
		}
	}
	t.Fatalf("category %s not listed", code)
	return nil
}

func baselineID(t *testing.T, svc *Service) int64 {
	t.Helper()
	versions, err := svc.ListBudgetVersions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	return versions[0].ID
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)

	before, err := svc.ListCategories(ctx, "")
	require.NoError(t, err)

	resp, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.UOMs)
	assert.Equal(t, 4, resp.Confidence)
	assert.Equal(t, len(seedCategories()), resp.Categories)

	after, err := svc.ListCategories(ctx, "")
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].UOMs, after[i].UOMs)
		assert.Equal(t, before[i].PELevels, after[i].PELevels)
	}

	uoms, err := svc.ListUOMs(ctx)
	require.NoError(t, err)
	assert.Len(t, uoms, 7)
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)

	t.Run("uom labels resolved", func(t *testing.T) {
		view := categoryByCode(t, svc, "USE-ACQ-PUR")
		assert.Contains(t, view.UOMs, domain.UOMRef{Code: "$/Acre", Label: "Per Acre"})
		assert.Equal(t, []domain.PELevel{domain.PELevelProject}, view.PELevels)
	})

	t.Run("pe level filter", func(t *testing.T) {
		views, err := svc.ListCategories(ctx, "parcel")
		require.NoError(t, err)
		require.NotEmpty(t, views)
		for _, v := range views {
			assert.Contains(t, v.PELevels, domain.PELevelParcel, v.Code)
		}
	})

	t.Run("unknown pe level is ignored", func(t *testing.T) {
		all, err := svc.ListCategories(ctx, "")
		require.NoError(t, err)
		unknown, err := svc.ListCategories(ctx, "galaxy")
		require.NoError(t, err)
		assert.Len(t, unknown, len(all))
	})

	t.Run("inactive hidden", func(t *testing.T) {
		off := false
		id := categoryByCode(t, svc, "USE-FIN-INT").ID
		require.NoError(t, svc.UpdateCategory(ctx, id, &dto.UpdateCategoryRequest{IsActive: &off}))

		views, err := svc.ListCategories(ctx, "")
		require.NoError(t, err)
		for _, v := range views {
			assert.NotEqual(t, "USE-FIN-INT", v.Code)
		}
	})
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Code: "X"})
		require.ErrorIs(t, err, constants.ErrMissingCategoryFields)
		_, err = svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Kind: domain.CategoryKindUse})
		require.ErrorIs(t, err, constants.ErrMissingCategoryFields)
	})

	t.Run("empty associations", func(t *testing.T) {
		id, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Code: "USE-TEST-1", Kind: domain.CategoryKindUse})
		require.NoError(t, err)
		assert.Positive(t, id)

		view := categoryByCode(t, svc, "USE-TEST-1")
		assert.True(t, view.IsActive)
		assert.NotNil(t, view.UOMs)
		assert.Empty(t, view.UOMs)
		assert.NotNil(t, view.PELevels)
		assert.Empty(t, view.PELevels)
	})

	t.Run("duplicate code", func(t *testing.T) {
		_, err := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Code: "USE-ACQ-PUR", Kind: domain.CategoryKindUse})
		require.ErrorIs(t, err, constants.ErrCategoryCodeTaken)
		require.ErrorIs(t, err, constants.ErrDBUniqueViolation)
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)
	view := categoryByCode(t, svc, "USE-DEV-GRD")

	t.Run("absent fields preserved", func(t *testing.T) {
		require.NoError(t, svc.UpdateCategory(ctx, view.ID, &dto.UpdateCategoryRequest{Detail: strPtr("Mass")}))

		got := categoryByCode(t, svc, "USE-DEV-GRD")
		assert.Equal(t, view.Class, got.Class)
		assert.Equal(t, view.Scope, got.Scope)
		assert.Equal(t, strPtr("Mass"), got.Detail)
		assert.Equal(t, view.UOMs, got.UOMs)
	})

	t.Run("associations replaced", func(t *testing.T) {
		require.NoError(t, svc.UpdateCategory(ctx, view.ID, &dto.UpdateCategoryRequest{
			UOMs:     []string{"$/Lot"},
			PELevels: []domain.PELevel{},
		}))

		got := categoryByCode(t, svc, "USE-DEV-GRD")
		assert.Equal(t, []domain.UOMRef{{Code: "$/Lot", Label: "Per Lot"}}, got.UOMs)
		assert.Empty(t, got.PELevels)
	})

	t.Run("missing row", func(t *testing.T) {
		err := svc.UpdateCategory(ctx, 99999, &dto.UpdateCategoryRequest{Detail: strPtr("x")})
		require.ErrorIs(t, err, constants.ErrDBNotFound)
	})

	t.Run("invalid kind", func(t *testing.T) {
		kind := domain.CategoryKind("Other")
		err := svc.UpdateCategory(ctx, view.ID, &dto.UpdateCategoryRequest{Kind: &kind})
		require.ErrorIs(t, err, constants.ErrInvalidCategoryKind)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)
	budgetID := baselineID(t, svc)

	used := categoryByCode(t, svc, "USE-ACQ-PUR")
	_, err := svc.CreateLine(ctx, &dto.CreateLineRequest{
		BudgetID: budgetID, PELevel: domain.PELevelProject, PEID: 1, CategoryID: used.ID, UOMCode: "$$$",
	})
	require.NoError(t, err)

	err = svc.DeleteCategory(ctx, used.ID)
	require.ErrorIs(t, err, constants.ErrCategoryInUse)
	categoryByCode(t, svc, "USE-ACQ-PUR")

	unused := categoryByCode(t, svc, "SRC-REV-REIMB")
	require.NoError(t, svc.DeleteCategory(ctx, unused.ID))
	views, err := svc.ListCategories(ctx, "")
	require.NoError(t, err)
	for _, v := range views {
		assert.NotEqual(t, unused.ID, v.ID)
	}

	require.ErrorIs(t, svc.DeleteCategory(ctx, unused.ID), constants.ErrDBNotFound)
}

func TestListLines(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc *Service) dto.LineScope {
		budgetID := baselineID(t, svc)
		amount := decimal.NewFromInt(1000)
		_, err := svc.CreateLine(ctx, &dto.CreateLineRequest{
			BudgetID:       budgetID,
			PELevel:        domain.PELevelPhase,
			PEID:           3,
			CategoryID:     categoryByCode(t, svc, "USE-DEV-GRD").ID,
			UOMCode:        "$$$",
			Amount:         &amount,
			ConfidenceCode: strPtr("C"),
		})
		require.NoError(t, err)
		return dto.LineScope{BudgetID: budgetID, PELevel: domain.PELevelPhase, PEID: 3}
	}

	t.Run("scope required", func(t *testing.T) {
		svc := newSeededService(t)
		for _, scope := range []dto.LineScope{
			{PELevel: domain.PELevelPhase, PEID: 3},
			{BudgetID: 1, PEID: 3},
			{BudgetID: 1, PELevel: domain.PELevelPhase},
		} {
			_, err := svc.ListLines(ctx, scope)
			require.ErrorIs(t, err, constants.ErrMissingLineScope)
		}
	})

	t.Run("effective view", func(t *testing.T) {
		svc := newSeededService(t)
		lines, err := svc.ListLines(ctx, create(t, svc))
		require.NoError(t, err)
		require.Len(t, lines, 1)

		l := lines[0]
		require.NotNil(t, l.EffectiveContingencyPct)
		assert.True(t, l.EffectiveContingencyPct.Equal(decimal.NewFromInt(15)))
		assert.True(t, l.AmountWithContingency.Equal(decimal.NewFromInt(1150)))
		assert.True(t, l.Qty.Equal(decimal.NewFromInt(1)))
	})

	t.Run("fallback when view missing", func(t *testing.T) {
		svc := newSeededService(t, memstore.WithoutEffectiveView())
		lines, err := svc.ListLines(ctx, create(t, svc))
		require.NoError(t, err)
		require.Len(t, lines, 1)

		l := lines[0]
		assert.Equal(t, "USE-DEV-GRD", l.CategoryCode)
		assert.Equal(t, "Lump Sum", l.UOMName)
		assert.Nil(t, l.AmountBase)
		assert.Nil(t, l.EffectiveContingencyPct)
		assert.Nil(t, l.AmountWithContingency)
	})

	t.Run("empty scope is an empty list", func(t *testing.T) {
		svc := newSeededService(t)
		lines, err := svc.ListLines(ctx, dto.LineScope{BudgetID: 1, PELevel: domain.PELevelLot, PEID: 1})
		require.NoError(t, err)
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})
}

func TestCreateLine(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)
	budgetID := baselineID(t, svc)

	_, err := svc.CreateLine(ctx, &dto.CreateLineRequest{BudgetID: budgetID, PELevel: domain.PELevelProject, PEID: 1, UOMCode: "$$$"})
	require.ErrorIs(t, err, constants.ErrMissingLineFields)

	_, err = svc.CreateLine(ctx, &dto.CreateLineRequest{BudgetID: budgetID, PELevel: domain.PELevelProject, PEID: 1, CategoryID: 99999, UOMCode: "$$$"})
	require.ErrorIs(t, err, constants.ErrDBForeignKey)
}

func TestUpdateAndDeleteLine(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)
	budgetID := baselineID(t, svc)
	scope := dto.LineScope{BudgetID: budgetID, PELevel: domain.PELevelProject, PEID: 1}

	id, err := svc.CreateLine(ctx, &dto.CreateLineRequest{
		BudgetID: budgetID, PELevel: domain.PELevelProject, PEID: 1,
		CategoryID: categoryByCode(t, svc, "USE-ACQ-PUR").ID, UOMCode: "$$$", Notes: strPtr("first"),
	})
	require.NoError(t, err)

	rate := decimal.NewFromInt(10)
	require.NoError(t, svc.UpdateLine(ctx, id, &dto.UpdateLineRequest{Rate: &rate}))

	lines, err := svc.ListLines(ctx, scope)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, strPtr("first"), lines[0].Notes)
	assert.True(t, lines[0].Rate.Equal(rate))

	require.ErrorIs(t, svc.UpdateLine(ctx, 99999, &dto.UpdateLineRequest{Rate: &rate}), constants.ErrDBNotFound)

	require.NoError(t, svc.DeleteLine(ctx, id))
	require.NoError(t, svc.DeleteLine(ctx, id))

	lines, err = svc.ListLines(ctx, scope)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestBudgetVersions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)
	svc := NewService(memstore.New())
	svc.now = func() time.Time { return now }

	versions, err := svc.ListBudgetVersions(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, constants.BaselineBudgetName, versions[0].Name)
	assert.Equal(t, constants.BaselineBudgetStatus, versions[0].Status)
	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), versions[0].AsOf)

	again, err := svc.ListBudgetVersions(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, versions[0].ID, again[0].ID)

	_, err = svc.CreateBudgetVersion(ctx, &dto.CreateBudgetRequest{Name: "  "})
	require.ErrorIs(t, err, constants.ErrMissingBudgetName)

	later := now.AddDate(0, 1, 0)
	id, err := svc.CreateBudgetVersion(ctx, &dto.CreateBudgetRequest{Name: "Reforecast", AsOf: &later, Status: strPtr("approved")})
	require.NoError(t, err)

	versions, err = svc.ListBudgetVersions(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, id, versions[0].ID)
	assert.Equal(t, "approved", versions[0].Status)
}

func TestGetCategory(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)
	listed := categoryByCode(t, svc, "SRC-REV-SAL-PARC")

	got, err := svc.GetCategory(ctx, listed.ID)
	require.NoError(t, err)
	assert.Equal(t, listed, got)

	_, err = svc.GetCategory(ctx, 99999)
	require.ErrorIs(t, err, constants.ErrDBNotFound)
}
