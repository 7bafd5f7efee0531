package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
	"github.com/tu-usuario/contaflow-api/internal/domain/repository"
)

// Asegura que ReconciliationRepo implementa el puerto.
var _ repository.ReconciliationRepository = (*ReconciliationRepo)(nil)

// ReconciliationRepo consulta de solo lectura de saldos mayor vs auxiliar.
type ReconciliationRepo struct {
	db DBTX
}

// NewReconciliationRepository construye el adaptador de conciliación.
func NewReconciliationRepository(db DBTX) *ReconciliationRepo {
	return &ReconciliationRepo{db: db}
}

// ListControlBalances devuelve, por cuenta de control de la empresa, el saldo
// del mayor (débitos - créditos de journal_lines) y el saldo reportado por el
// auxiliar (subledger_balances). Ambos en NUMERIC, escaneados a decimal.
func (r *ReconciliationRepo) ListControlBalances(ctx context.Context, companyID string) ([]entity.ReconciliationRow, error) {
	query := `
		SELECT a.code,
		       a.name,
		       COALESCE(SUM(jl.debit - jl.credit), 0) AS control_balance,
		       COALESCE(sb.balance, 0)                AS subledger_balance
		FROM accounts a
		LEFT JOIN journal_entries je ON je.company_id = a.company_id
		LEFT JOIN journal_lines jl  ON jl.entry_id = je.id AND jl.account_code = a.code
		LEFT JOIN subledger_balances sb ON sb.company_id = a.company_id AND sb.account_code = a.code
		WHERE a.company_id = $1 AND a.control = true
		GROUP BY a.code, a.name, sb.balance
		ORDER BY a.code`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list control balances: %w", err)
	}
	defer rows.Close()

	list := make([]entity.ReconciliationRow, 0)
	for rows.Next() {
		var row entity.ReconciliationRow
		if err := rows.Scan(&row.AccountCode, &row.AccountName, &row.ControlBalance, &row.SubledgerBalance); err != nil {
			return nil, fmt.Errorf("scan control balance: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
