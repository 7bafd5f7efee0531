package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/contaflow-api/internal/application/usecase"
	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
)

func reconRow(code string, control, subledger string) entity.ReconciliationRow {
	return entity.ReconciliationRow{
		AccountCode:      code,
		AccountName:      "Cuenta " + code,
		ControlBalance:   decimal.RequireFromString(control),
		SubledgerBalance: decimal.RequireFromString(subledger),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del umbral de conciliación: |mayor - auxiliar| < 0.01 suprime el aviso
// ──────────────────────────────────────────────────────────────────────────────

func TestReconciliation_Umbral(t *testing.T) {
	cases := []struct {
		name        string
		control     string
		subledger   string
		wantWarning bool
		wantDiff    string
	}{
		{"iguales no avisa", "100.00", "100.00", false, ""},
		{"0.005 está bajo el umbral y se suprime", "100.005", "100.00", false, ""},
		{"0.02 supera el umbral y se muestra", "100.02", "100.00", true, "0.02"},
		{"exactamente 0.01 se muestra", "100.01", "100.00", true, "0.01"},
		{"0.009 se suprime", "100.009", "100.00", false, ""},
		{"la diferencia es absoluta: auxiliar mayor también avisa", "100.00", "105.50", true, "5.50"},
		{"ceros no avisan", "0", "0", false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeReconRepo{rows: []entity.ReconciliationRow{reconRow("1305", tc.control, tc.subledger)}}
			uc := usecase.NewReconciliationUseCase(repo)

			out, err := uc.ListForCompany(context.Background(), companyX)
			require.NoError(t, err)
			require.Len(t, out.Items, 1)

			row := out.Items[0]
			assert.Equal(t, tc.wantWarning, row.ShowWarning)
			assert.Equal(t, tc.wantDiff, row.Difference,
				"difference va vacío cuando el aviso se suprime")
		})
	}
}

func TestReconciliation_FormateaADosDecimales(t *testing.T) {
	repo := &fakeReconRepo{rows: []entity.ReconciliationRow{reconRow("1305", "100.02", "100")}}
	uc := usecase.NewReconciliationUseCase(repo)

	out, err := uc.ListForCompany(context.Background(), companyX)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	row := out.Items[0]
	assert.Equal(t, "100.02", row.ControlBalance)
	assert.Equal(t, "100.00", row.SubledgerBalance, "los saldos van siempre con dos decimales")
	assert.Equal(t, "0.02", row.Difference)
}

func TestReconciliation_SinCuentasDeControl(t *testing.T) {
	uc := usecase.NewReconciliationUseCase(&fakeReconRepo{})
	out, err := uc.ListForCompany(context.Background(), companyX)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, companyX, out.CompanyID)
}
