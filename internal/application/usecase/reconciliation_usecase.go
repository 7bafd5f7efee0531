package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
	"github.com/tu-usuario/contaflow-api/internal/domain/repository"
)

// reconciliationThreshold: diferencias por debajo de 0.01 se consideran
// ruido de redondeo y el banner se suprime.
var reconciliationThreshold = decimal.RequireFromString("0.01")

// ReconciliationUseCase arma la vista de conciliación mayor vs auxiliar.
type ReconciliationUseCase struct {
	reconRepo repository.ReconciliationRepository
}

// NewReconciliationUseCase construye el caso de uso de conciliación.
func NewReconciliationUseCase(reconRepo repository.ReconciliationRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{reconRepo: reconRepo}
}

// ListForCompany devuelve las cuentas de control de la empresa con sus
// saldos a dos decimales. ShowWarning solo se enciende cuando
// |mayor - auxiliar| >= 0.01; por debajo, Difference va vacío.
func (uc *ReconciliationUseCase) ListForCompany(ctx context.Context, companyID string) (*dto.ReconciliationResponse, error) {
	rows, err := uc.reconRepo.ListControlBalances(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReconciliationRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, buildReconciliationRow(r))
	}
	return &dto.ReconciliationResponse{CompanyID: companyID, Items: items}, nil
}

func buildReconciliationRow(r entity.ReconciliationRow) dto.ReconciliationRowResponse {
	out := dto.ReconciliationRowResponse{
		AccountCode:      r.AccountCode,
		AccountName:      r.AccountName,
		ControlBalance:   r.ControlBalance.StringFixed(2),
		SubledgerBalance: r.SubledgerBalance.StringFixed(2),
	}
	diff := r.ControlBalance.Sub(r.SubledgerBalance).Abs()
	if diff.Cmp(reconciliationThreshold) >= 0 {
		out.ShowWarning = true
		out.Difference = diff.StringFixed(2)
	}
	return out
}
