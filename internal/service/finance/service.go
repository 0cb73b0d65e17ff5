// Package finance holds the business rules of the financial category and
// budget line model on top of store.Store.
package finance

import (
	"time"

	"github.com/ougirez/landscape/internal/pkg/store"
)

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
