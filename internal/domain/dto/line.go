package dto

import (
	"github.com/ougirez/landscape/internal/domain"
	"github.com/shopspring/decimal"
)

type LineScope struct {
	BudgetID int64          `query:"budget_id"`
	PELevel  domain.PELevel `query:"pe_level"`
	PEID     int64          `query:"pe_id"`
}

type CreateLineRequest struct {
	BudgetID        int64                   `json:"budget_id"`
	PELevel         domain.PELevel          `json:"pe_level" validate:"omitempty,oneof=project area phase parcel lot"`
	PEID            int64                   `json:"pe_id"`
	CategoryID      int64                   `json:"category_id"`
	UOMCode         string                  `json:"uom_code"`
	Qty             *decimal.Decimal        `json:"qty"`
	Rate            *decimal.Decimal        `json:"rate"`
	Amount          *decimal.Decimal        `json:"amount"`
	Notes           *string                 `json:"notes"`
	ConfidenceCode  *string                 `json:"confidence_code"`
	ContingencyMode *domain.ContingencyMode `json:"contingency_mode" validate:"omitempty,oneof=none confidence override"`
	ContingencyPct  *decimal.Decimal        `json:"contingency_pct"`
}

// UpdateLineRequest is a partial update; nil fields are left unchanged.
type UpdateLineRequest struct {
	BudgetID        *int64                  `json:"budget_id"`
	PELevel         *domain.PELevel         `json:"pe_level" validate:"omitempty,oneof=project area phase parcel lot"`
	PEID            *int64                  `json:"pe_id"`
	CategoryID      *int64                  `json:"category_id"`
	UOMCode         *string                 `json:"uom_code"`
	Qty             *decimal.Decimal        `json:"qty"`
	Rate            *decimal.Decimal        `json:"rate"`
	Amount          *decimal.Decimal        `json:"amount"`
	Notes           *string                 `json:"notes"`
	ConfidenceCode  *string                 `json:"confidence_code"`
	ContingencyMode *domain.ContingencyMode `json:"contingency_mode" validate:"omitempty,oneof=none confidence override"`
	ContingencyPct  *decimal.Decimal        `json:"contingency_pct"`
}

type CreateLineResponse struct {
	FactID int64 `json:"fact_id"`
}
