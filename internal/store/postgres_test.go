package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

func TestConfigViolation(t *testing.T) {
	t.Parallel()

	checkErr := &pgconn.PgError{
		Code:           pgCheckViolation,
		ConstraintName: "pricing_configs_check",
	}

	tests := []struct {
		name        string
		err         error
		wantInvalid bool
		wantMsg     string
	}{
		{
			name:        "check violation",
			err:         checkErr,
			wantInvalid: true,
			wantMsg:     "invalid pricing config: violates pricing_configs_check",
		},
		{
			name:        "wrapped check violation",
			err:         fmt.Errorf("scanning: %w", checkErr),
			wantInvalid: true,
		},
		{
			name: "other constraint",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "pricing_configs_item_id_fkey"},
		},
		{
			name: "not a postgres error",
			err:  errors.New("connection reset"),
		},
		{
			name: "no rows",
			err:  pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := configViolation(tt.err, "upserting pricing config")
			assert.Equal(t, tt.wantInvalid, errors.Is(err, domain.ErrInvalidConfig))
			if !tt.wantInvalid {
				assert.ErrorIs(t, err, tt.err)
			}
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}
