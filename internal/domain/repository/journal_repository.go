package repository

import (
	"context"

	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
)

// JournalRepository puerto de persistencia para asientos contables.
type JournalRepository interface {
	// CreateEntry persiste el asiento con todas sus líneas como una unidad.
	CreateEntry(ctx context.Context, entry *entity.JournalEntry) error
	GetEntryByID(ctx context.Context, id string) (*entity.JournalEntry, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.JournalEntry, error)
}
