package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLineRequest una línea del asiento a crear. Débito y crédito son
// excluyentes; el que no aplica va en cero.
type JournalLineRequest struct {
	AccountCode string          `json:"account_code" validate:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest entrada para crear un asiento.
type CreateJournalEntryRequest struct {
	EntryDate string               `json:"entry_date" validate:"required"` // formato 2006-01-02
	Memo      string               `json:"memo" validate:"omitempty,max=500"`
	Lines     []JournalLineRequest `json:"lines" validate:"required,min=2"`
}

// JournalLineResponse línea de asiento en respuestas.
type JournalLineResponse struct {
	ID          string `json:"id"`
	AccountCode string `json:"account_code"`
	Description string `json:"description"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

// JournalEntryResponse asiento completo en respuestas. Los montos van como
// strings con dos decimales para no perder precisión en JSON.
type JournalEntryResponse struct {
	ID        string                `json:"id"`
	CompanyID string                `json:"company_id"`
	EntryDate string                `json:"entry_date"`
	Memo      string                `json:"memo"`
	CreatedBy string                `json:"created_by"`
	CreatedAt time.Time             `json:"created_at"`
	Lines     []JournalLineResponse `json:"lines"`
}

// JournalEntryListResponse lista paginada de asientos.
type JournalEntryListResponse struct {
	Items []JournalEntryResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
