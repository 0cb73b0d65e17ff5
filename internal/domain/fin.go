package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PELevel is the planning entity granularity a category or budget line applies to.
type PELevel string

const (
	PELevelProject PELevel = "project"
	PELevelArea    PELevel = "area"
	PELevelPhase   PELevel = "phase"
	PELevelParcel  PELevel = "parcel"
	PELevelLot     PELevel = "lot"
)

var PELevels = []PELevel{PELevelProject, PELevelArea, PELevelPhase, PELevelParcel, PELevelLot}

func (l PELevel) Valid() bool {
	for _, level := range PELevels {
		if l == level {
			return true
		}
	}
	return false
}

type CategoryKind string

const (
	CategoryKindUse    CategoryKind = "Use"
	CategoryKindSource CategoryKind = "Source"
)

func (k CategoryKind) Valid() bool {
	return k == CategoryKindUse || k == CategoryKindSource
}

type ContingencyMode string

const (
	ContingencyModeNone       ContingencyMode = "none"
	ContingencyModeConfidence ContingencyMode = "confidence"
	ContingencyModeOverride   ContingencyMode = "override"
)

type Category struct {
	ID        int64        `db:"category_id" json:"category_id"`
	Code      string       `db:"code" json:"code"`
	Kind      CategoryKind `db:"kind" json:"kind"`
	Class     *string      `db:"class" json:"class"`
	Event     *string      `db:"event" json:"event"`
	Scope     *string      `db:"scope" json:"scope"`
	Detail    *string      `db:"detail" json:"detail"`
	ParentID  *int64       `db:"parent_id" json:"parent_id"`
	IsActive  bool         `db:"is_active" json:"is_active"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

type CategoryUOM struct {
	CategoryID int64  `db:"category_id"`
	UOMCode    string `db:"uom_code"`
}

type CategoryPELevel struct {
	CategoryID int64   `db:"category_id"`
	PELevel    PELevel `db:"pe_level"`
}

type UOMRef struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CategoryView is a category together with its allowed units and levels.
type CategoryView struct {
	Category
	UOMs     []UOMRef  `json:"uoms"`
	PELevels []PELevel `json:"pe_levels"`
}

type UOM struct {
	Code     string `db:"uom_code" json:"uom_code"`
	Name     string `db:"name" json:"name"`
	UOMType  string `db:"uom_type" json:"uom_type"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type ConfidencePolicy struct {
	Code                  string          `db:"confidence_code" json:"confidence_code"`
	Name                  string          `db:"name" json:"name"`
	DefaultContingencyPct decimal.Decimal `db:"default_contingency_pct" json:"default_contingency_pct"`
	IsActive              bool            `db:"is_active" json:"is_active"`
}

type BudgetVersion struct {
	ID        int64     `db:"budget_id" json:"budget_id"`
	Name      string    `db:"name" json:"name"`
	AsOf      time.Time `db:"as_of" json:"as_of"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BudgetLine is one budget fact. The Amount*/Effective* fields are only
// filled when the rows come from the effective view.
type BudgetLine struct {
	FactID             int64            `db:"fact_id" json:"fact_id"`
	BudgetID           int64            `db:"budget_id" json:"budget_id"`
	PELevel            PELevel          `db:"pe_level" json:"pe_level"`
	PEID               int64            `db:"pe_id" json:"pe_id"`
	CategoryID         int64            `db:"category_id" json:"category_id"`
	CategoryCode       string           `db:"category_code" json:"category_code"`
	UOMCode            string           `db:"uom_code" json:"uom_code"`
	UOMName            string           `db:"uom_name" json:"uom_name"`
	Qty                decimal.Decimal  `db:"qty" json:"qty"`
	Rate               *decimal.Decimal `db:"rate" json:"rate"`
	Amount             *decimal.Decimal `db:"amount" json:"amount"`
	Notes              *string          `db:"notes" json:"notes"`
	ContingencyMode    *ContingencyMode `db:"contingency_mode" json:"contingency_mode"`
	ConfidenceCode     *string          `db:"confidence_code" json:"confidence_code"`
	LineContingencyPct *decimal.Decimal `db:"line_contingency_pct" json:"line_contingency_pct"`
	CreatedAt          time.Time        `db:"created_at" json:"created_at"`

	AmountBase              *decimal.Decimal `db:"amount_base" json:"amount_base,omitempty"`
	EffectiveContingencyPct *decimal.Decimal `db:"effective_contingency_pct" json:"effective_contingency_pct,omitempty"`
	AmountWithContingency   *decimal.Decimal `db:"amount_with_contingency" json:"amount_with_contingency,omitempty"`
}

type Party struct {
	ID        int64  `db:"party_id" json:"party_id"`
	Name      string `db:"name" json:"name"`
	PartyType string `db:"party_type" json:"party_type"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}

type Note struct {
	ID     int64  `db:"note_id" json:"note_id"`
	Author string `db:"author" json:"author"`
	Body   string `db:"body" json:"body"`
}

type LineVendor struct {
	PartyID   int64   `db:"party_id" json:"party_id"`
	PartyName string  `db:"party_name" json:"party_name"`
	Role      string  `db:"role" json:"role"`
	NoteID    *int64  `db:"note_id" json:"note_id"`
	NoteBody  *string `db:"note_body" json:"note_body"`
}

type LineVendorLink struct {
	FactID  int64
	PartyID int64
	Role    string
	NoteID  *int64
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
