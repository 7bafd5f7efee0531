package dto

// ReconciliationRowResponse una cuenta de control con sus saldos formateados
// a dos decimales. Difference viene vacío y ShowWarning en false cuando la
// diferencia está por debajo del umbral y el banner se suprime.
type ReconciliationRowResponse struct {
	AccountCode      string `json:"account_code"`
	AccountName      string `json:"account_name"`
	ControlBalance   string `json:"control_balance"`
	SubledgerBalance string `json:"subledger_balance"`
	Difference       string `json:"difference,omitempty"`
	ShowWarning      bool   `json:"show_warning"`
}

// ReconciliationResponse vista de conciliación de una empresa.
type ReconciliationResponse struct {
	CompanyID string                      `json:"company_id"`
	Items     []ReconciliationRowResponse `json:"items"`
}
