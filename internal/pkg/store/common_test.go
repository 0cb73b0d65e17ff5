package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
)

func pgxErrNoRows() error {
	return fmt.Errorf("scan: %w", pgx.ErrNoRows)
}

func TestWrapErr(t *testing.T) {
	plain := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgxErrNoRows(), want: constants.ErrDBNotFound},
		{name: "foreign key", in: pgError(pgErrForeignKeyViolation), want: constants.ErrDBForeignKey},
		{name: "unique", in: pgError(pgErrUniqueViolation), want: constants.ErrDBUniqueViolation},
		{name: "check", in: pgError(pgErrCheckViolation), want: constants.ErrDBCheckViolation},
		{name: "not null", in: pgError(pgErrNotNullViolation), want: constants.ErrDBNotNullViolation},
		{name: "undefined table", in: pgError(pgErrUndefinedTable), want: constants.ErrDBUndefinedObject},
		{name: "undefined column", in: pgError(pgErrUndefinedColumn), want: constants.ErrDBUndefinedObject},
		{name: "other", in: plain, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapErr(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestWrapErrKeepsDriverError(t *testing.T) {
	err := wrapErr(pgError(pgErrForeignKeyViolation))
	assert.Contains(t, err.Error(), "test failure 23503")
}
