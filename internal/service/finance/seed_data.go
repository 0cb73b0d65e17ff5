package finance

import (
	"github.com/ougirez/landscape/internal/domain"
	"github.com/ougirez/landscape/internal/domain/dto"
	"github.com/shopspring/decimal"
)

var (
	allLevels    = []domain.PELevel{domain.PELevelProject, domain.PELevelArea, domain.PELevelPhase, domain.PELevelParcel, domain.PELevelLot}
	projectLevel = []domain.PELevel{domain.PELevelProject}
	devLevels    = []domain.PELevel{domain.PELevelProject, domain.PELevelArea, domain.PELevelPhase}
	saleLevels   = []domain.PELevel{domain.PELevelPhase, domain.PELevelParcel, domain.PELevelLot}
)

func seedUOMs() []*domain.UOM {
	return []*domain.UOM{
		{Code: "$$$", Name: "Lump Sum", UOMType: "currency", IsActive: true},
		{Code: "% of", Name: "Percent Of", UOMType: "percent", IsActive: true},
		{Code: "$/Acre", Name: "Per Acre", UOMType: "area", IsActive: true},
		{Code: "$/SF", Name: "Per Square Foot", UOMType: "area", IsActive: true},
		{Code: "$/Lot", Name: "Per Lot", UOMType: "count", IsActive: true},
		{Code: "$/Unit", Name: "Per Unit", UOMType: "count", IsActive: true},
		{Code: "$/FF", Name: "Per Front Foot", UOMType: "linear", IsActive: true},
	}
}

func seedConfidencePolicies() []*domain.ConfidencePolicy {
	return []*domain.ConfidencePolicy{
		{Code: "A", Name: "Contract / Bid", DefaultContingencyPct: decimal.NewFromInt(5), IsActive: true},
		{Code: "B", Name: "Engineer Estimate", DefaultContingencyPct: decimal.NewFromInt(10), IsActive: true},
		{Code: "C", Name: "Budgetary", DefaultContingencyPct: decimal.NewFromInt(15), IsActive: true},
		{Code: "D", Name: "Conceptual", DefaultContingencyPct: decimal.NewFromInt(25), IsActive: true},
	}
}

func seedCategories() []*dto.SeedCategory {
	return []*dto.SeedCategory{
		{Code: "USE-ACQ-PUR", Kind: domain.CategoryKindUse, Class: "Acquisition", Event: "Purchase", Scope: "Land", UOMs: []string{"$$$", "$/Acre"}, PELevels: projectLevel},
		{Code: "USE-ACQ-CLS", Kind: domain.CategoryKindUse, Class: "Acquisition", Event: "Closing", Scope: "Costs", UOMs: []string{"$$$", "% of"}, PELevels: projectLevel},
		{Code: "USE-ACQ-DD", Kind: domain.CategoryKindUse, Class: "Acquisition", Event: "Due Diligence", UOMs: []string{"$$$"}, PELevels: projectLevel},
		{Code: "USE-PLN-ENT", Kind: domain.CategoryKindUse, Class: "Planning", Event: "Entitlements", UOMs: []string{"$$$", "$/Acre"}, PELevels: devLevels},
		{Code: "USE-PLN-ENG", Kind: domain.CategoryKindUse, Class: "Planning", Event: "Engineering", UOMs: []string{"$$$", "$/Acre", "$/Lot"}, PELevels: devLevels},
		{Code: "USE-DEV-GRD", Kind: domain.CategoryKindUse, Class: "Development", Event: "Site Work", Scope: "Grading", UOMs: []string{"$$$", "$/Acre", "$/SF"}, PELevels: devLevels},
		{Code: "USE-DEV-UTL", Kind: domain.CategoryKindUse, Class: "Development", Event: "Site Work", Scope: "Utilities", UOMs: []string{"$$$", "$/FF", "$/Lot"}, PELevels: allLevels},
		{Code: "USE-DEV-PAV", Kind: domain.CategoryKindUse, Class: "Development", Event: "Site Work", Scope: "Paving", UOMs: []string{"$$$", "$/SF", "$/FF"}, PELevels: allLevels},
		{Code: "USE-DEV-LND", Kind: domain.CategoryKindUse, Class: "Development", Event: "Amenities", Scope: "Landscape", UOMs: []string{"$$$", "$/SF"}, PELevels: devLevels},
		{Code: "USE-FEE-IMP", Kind: domain.CategoryKindUse, Class: "Fees", Event: "Impact", UOMs: []string{"$/Lot", "$/Unit"}, PELevels: saleLevels},
		{Code: "USE-FEE-PRM", Kind: domain.CategoryKindUse, Class: "Fees", Event: "Permits", UOMs: []string{"$$$", "$/Lot"}, PELevels: allLevels},
		{Code: "USE-SOF-MGT", Kind: domain.CategoryKindUse, Class: "Soft Costs", Event: "Management", UOMs: []string{"$$$", "% of"}, PELevels: projectLevel},
		{Code: "USE-SOF-MKT", Kind: domain.CategoryKindUse, Class: "Soft Costs", Event: "Marketing", UOMs: []string{"$$$", "% of"}, PELevels: projectLevel},
		{Code: "USE-FIN-INT", Kind: domain.CategoryKindUse, Class: "Financing", Event: "Interest", UOMs: []string{"$$$", "% of"}, PELevels: projectLevel},
		{Code: "SRC-EQT-DEV", Kind: domain.CategoryKindSource, Class: "Equity", Event: "Developer", UOMs: []string{"$$$", "% of"}, PELevels: projectLevel},
		{Code: "SRC-DBT-LND", Kind: domain.CategoryKindSource, Class: "Debt", Event: "Land Loan", UOMs: []string{"$$$", "% of"}, PELevels: projectLevel},
		{Code: "SRC-DBT-AD", Kind: domain.CategoryKindSource, Class: "Debt", Event: "A&D Loan", UOMs: []string{"$$$", "% of"}, PELevels: projectLevel},
		{Code: "SRC-REV-SAL-PARC", Kind: domain.CategoryKindSource, Class: "Revenue", Event: "Sales", Scope: "Parcel", UOMs: []string{"$$$", "$/Acre", "$/Lot"}, PELevels: []domain.PELevel{domain.PELevelParcel}},
		{Code: "SRC-REV-SAL-LOT", Kind: domain.CategoryKindSource, Class: "Revenue", Event: "Sales", Scope: "Lot", UOMs: []string{"$/Lot", "$/FF"}, PELevels: []domain.PELevel{domain.PELevelLot}},
		{Code: "SRC-REV-REIMB", Kind: domain.CategoryKindSource, Class: "Revenue", Event: "Reimbursements", UOMs: []string{"$$$"}, PELevels: devLevels},
	}
}
