package dto

import "time"

type CreateBudgetRequest struct {
	Name   string     `json:"name"`
	AsOf   *time.Time `json:"as_of"`
	Status *string    `json:"status"`
}

type CreateBudgetResponse struct {
	BudgetID int64 `json:"budget_id"`
}

type SeedResponse struct {
	UOMs       int `json:"uoms"`
	Confidence int `json:"confidence"`
	Categories int `json:"categories"`
}

type AdminLoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}
