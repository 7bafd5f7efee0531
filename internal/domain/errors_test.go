package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/contaflow-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests IsSchemaCacheStale — heurística sobre el mensaje de error
// ──────────────────────────────────────────────────────────────────────────────

func TestIsSchemaCacheStale_DetectaFragmentos(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil no es stale", nil, false},
		{"does not exist en minúsculas", errors.New(`relation "journal_entries" does not exist`), true},
		{"DOES NOT EXIST en mayúsculas", errors.New(`column DOES NOT EXIST`), true},
		{"mezcla de mayúsculas", errors.New(`table Does Not Exist yet`), true},
		{"schema cache", errors.New("could not find the table in the schema cache"), true},
		{"error envuelto conserva el fragmento", fmt.Errorf("list roles by user: %w", errors.New(`relation does not exist`)), true},
		{"error sin relación con esquema", errors.New("connection refused"), false},
		{"violación de constraint no es stale", errors.New("duplicate key value violates unique constraint"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.IsSchemaCacheStale(tc.err),
				"la detección debe coincidir para: %v", tc.err)
		})
	}
}

func TestErrOnlyAdminCreatesCompany_MensajeExacto(t *testing.T) {
	// El mensaje es contrato con la UI; no puede cambiar.
	assert.Equal(t, "Only Admin users can create companies.", domain.ErrOnlyAdminCreatesCompany.Error())
}
