package dto

import "github.com/ougirez/landscape/internal/domain"

type CreateCategoryRequest struct {
	Code     string              `json:"code"`
	Kind     domain.CategoryKind `json:"kind" validate:"omitempty,oneof=Use Source"`
	Class    *string             `json:"class"`
	Event    *string             `json:"event"`
	Scope    *string             `json:"scope"`
	Detail   *string             `json:"detail"`
	ParentID *int64              `json:"parent_id"`
	IsActive *bool               `json:"is_active"`
	UOMs     []string            `json:"uoms"`
	PELevels []domain.PELevel    `json:"pe_levels" validate:"dive,oneof=project area phase parcel lot"`
}

// UpdateCategoryRequest is a partial update. A nil field is left unchanged;
// a non-nil UOMs or PELevels replaces the whole association set.
type UpdateCategoryRequest struct {
	Code     *string              `json:"code"`
	Kind     *domain.CategoryKind `json:"kind" validate:"omitempty,oneof=Use Source"`
	Class    *string              `json:"class"`
	Event    *string              `json:"event"`
	Scope    *string              `json:"scope"`
	Detail   *string              `json:"detail"`
	ParentID *int64               `json:"parent_id"`
	IsActive *bool                `json:"is_active"`
	UOMs     []string             `json:"uoms"`
	PELevels []domain.PELevel     `json:"pe_levels" validate:"dive,oneof=project area phase parcel lot"`
}

// HasFields reports whether any column of the category row itself is set.
func (r *UpdateCategoryRequest) HasFields() bool {
	return r.Code != nil || r.Kind != nil || r.Class != nil || r.Event != nil ||
		r.Scope != nil || r.Detail != nil || r.ParentID != nil || r.IsActive != nil
}

type CreateCategoryResponse struct {
	CategoryID int64 `json:"category_id"`
}

// SeedCategory is a starter category upserted by code.
type SeedCategory struct {
	Code     string
	Kind     domain.CategoryKind
	Class    string
	Event    string
	Scope    string
	Detail   string
	UOMs     []string
	PELevels []domain.PELevel
}
