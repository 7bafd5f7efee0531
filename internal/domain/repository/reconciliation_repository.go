package repository

import (
	"context"

	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
)

// ReconciliationRepository consulta de solo lectura de saldos mayor vs
// auxiliar por cuenta de control.
type ReconciliationRepository interface {
	ListControlBalances(ctx context.Context, companyID string) ([]entity.ReconciliationRow, error)
}
