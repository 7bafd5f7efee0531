package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
	"github.com/tu-usuario/contaflow-api/internal/domain/repository"
)

// Asegura que JournalRepo implementa repository.JournalRepository.
var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implementación del puerto JournalRepository sobre PostgreSQL.
// Recibe el pool (no DBTX) porque CreateEntry abre su propia transacción
// para insertar cabecera y líneas como unidad.
type JournalRepo struct {
	pool *pgxpool.Pool
}

// NewJournalRepository construye el adaptador de persistencia para asientos.
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// CreateEntry persiste el asiento con sus líneas en una transacción.
func (r *JournalRepo) CreateEntry(ctx context.Context, entry *entity.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO journal_entries (id, company_id, entry_date, memo, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.CompanyID, entry.EntryDate, entry.Memo, entry.CreatedBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	for _, l := range entry.Lines {
		_, err = tx.Exec(ctx, `
			INSERT INTO journal_lines (id, entry_id, account_code, description, debit, credit)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			l.ID, l.EntryID, l.AccountCode, l.Description, l.Debit, l.Credit,
		)
		if err != nil {
			return fmt.Errorf("insert journal line: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetEntryByID obtiene un asiento con sus líneas.
func (r *JournalRepo) GetEntryByID(ctx context.Context, id string) (*entity.JournalEntry, error) {
	var e entity.JournalEntry
	err := r.pool.QueryRow(ctx, `
		SELECT id, company_id, entry_date, memo, created_by, created_at
		FROM journal_entries WHERE id = $1`, id).Scan(
		&e.ID, &e.CompanyID, &e.EntryDate, &e.Memo, &e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	if err := r.loadLines(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByCompany devuelve asientos de una empresa, más recientes primero.
func (r *JournalRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.JournalEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, entry_date, memo, created_by, created_at
		FROM journal_entries WHERE company_id = $1
		ORDER BY entry_date DESC, created_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.JournalEntry
	for rows.Next() {
		var e entity.JournalEntry
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.EntryDate, &e.Memo, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, e := range list {
		if err := r.loadLines(ctx, e); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *JournalRepo) loadLines(ctx context.Context, e *entity.JournalEntry) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, entry_id, account_code, description, debit, credit
		FROM journal_lines WHERE entry_id = $1 ORDER BY account_code`, e.ID)
	if err != nil {
		return fmt.Errorf("list journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l entity.JournalLine
		if err := rows.Scan(&l.ID, &l.EntryID, &l.AccountCode, &l.Description, &l.Debit, &l.Credit); err != nil {
			return fmt.Errorf("scan journal line: %w", err)
		}
		e.Lines = append(e.Lines, l)
	}
	return rows.Err()
}
