package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/domain"
	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
	"github.com/tu-usuario/contaflow-api/internal/domain/repository"
)

const entryDateLayout = "2006-01-02"

// JournalUseCase casos de uso de asientos contables.
type JournalUseCase struct {
	journalRepo repository.JournalRepository
}

// NewJournalUseCase construye el caso de uso de asientos.
func NewJournalUseCase(journalRepo repository.JournalRepository) *JournalUseCase {
	return &JournalUseCase{journalRepo: journalRepo}
}

// CreateEntry valida y persiste un asiento. Rechaza asientos con menos de
// dos líneas, montos negativos, líneas con débito y crédito simultáneos, y
// asientos que no cuadran (ErrUnbalancedEntry).
func (uc *JournalUseCase) CreateEntry(ctx context.Context, companyID, userID string, in dto.CreateJournalEntryRequest) (*dto.JournalEntryResponse, error) {
	if companyID == "" || len(in.Lines) < 2 {
		return nil, domain.ErrInvalidInput
	}
	entryDate, err := time.Parse(entryDateLayout, in.EntryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	entry := &entity.JournalEntry{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		EntryDate: entryDate,
		Memo:      in.Memo,
		CreatedBy: userID,
		CreatedAt: now,
		Lines:     make([]entity.JournalLine, 0, len(in.Lines)),
	}
	for _, l := range in.Lines {
		if l.AccountCode == "" {
			return nil, domain.ErrInvalidInput
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		// Una línea lleva débito o crédito, no ambos.
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		entry.Lines = append(entry.Lines, entity.JournalLine{
			ID:          uuid.New().String(),
			EntryID:     entry.ID,
			AccountCode: l.AccountCode,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	if !entry.IsBalanced() {
		return nil, domain.ErrUnbalancedEntry
	}
	if entry.TotalDebit().Equal(decimal.Zero) {
		return nil, domain.ErrInvalidInput // asiento en ceros no registra nada
	}

	if err := uc.journalRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entryToResponse(entry), nil
}

// ListByCompany lista asientos de una empresa con paginación.
func (uc *JournalUseCase) ListByCompany(ctx context.Context, companyID string, page dto.PageRequest) (*dto.JournalEntryListResponse, error) {
	page.DefaultPage()
	list, err := uc.journalRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JournalEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entryToResponse(e))
	}
	return &dto.JournalEntryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func entryToResponse(e *entity.JournalEntry) *dto.JournalEntryResponse {
	if e == nil {
		return nil
	}
	out := &dto.JournalEntryResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		EntryDate: e.EntryDate.Format(entryDateLayout),
		Memo:      e.Memo,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
		Lines:     make([]dto.JournalLineResponse, 0, len(e.Lines)),
	}
	for _, l := range e.Lines {
		out.Lines = append(out.Lines, dto.JournalLineResponse{
			ID:          l.ID,
			AccountCode: l.AccountCode,
			Description: l.Description,
			Debit:       l.Debit.StringFixed(2),
			Credit:      l.Credit.StringFixed(2),
		})
	}
	return out
}
