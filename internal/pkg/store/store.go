package store

import (
	"github.com/ougirez/landscape/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the persistence surface of the financial model. Every method is
// a single statement; callers compose them without a surrounding transaction.
type Store interface {
	CategoryStore
	ReferenceStore
	BudgetStore
	LineStore
	VendorStore
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
