package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry es un asiento contable de una empresa. Un asiento válido tiene
// al menos dos líneas y la suma de débitos igual a la suma de créditos.
type JournalEntry struct {
	ID        string
	CompanyID string
	EntryDate time.Time
	Memo      string
	CreatedBy string // user ID del autor
	CreatedAt time.Time
	Lines     []JournalLine
}

// JournalLine es una línea de asiento. Débito y crédito son excluyentes:
// una línea lleva valor en uno de los dos, nunca en ambos.
type JournalLine struct {
	ID          string
	EntryID     string
	AccountCode string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// TotalDebit suma los débitos del asiento.
func (e *JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit suma los créditos del asiento.
func (e *JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced informa si débitos y créditos cuadran.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebit().Equal(e.TotalCredit())
}
