package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account es una cuenta del plan contable de una empresa. Las cuentas de
// control (Control=true) se comparan contra su auxiliar en la conciliación.
type Account struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	Control   bool
	CreatedAt time.Time
}

// ReconciliationRow es el par de saldos (mayor vs auxiliar) de una cuenta de
// control, tal como lo devuelve la consulta de conciliación.
type ReconciliationRow struct {
	AccountCode      string
	AccountName      string
	ControlBalance   decimal.Decimal
	SubledgerBalance decimal.Decimal
}
