package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/application/usecase"
	"github.com/tu-usuario/contaflow-api/internal/domain"
)

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func balancedEntry() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate: "2025-03-15",
		Memo:      "compra de papelería",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "5195", Description: "papelería", Debit: amount("119000"), Credit: decimal.Zero},
			{AccountCode: "1110", Description: "banco", Debit: decimal.Zero, Credit: amount("119000")},
		},
	}
}

func TestJournalCreate_AsientoBalanceado(t *testing.T) {
	repo := &fakeJournalRepo{}
	uc := usecase.NewJournalUseCase(repo)

	out, err := uc.CreateEntry(context.Background(), companyX, staffUser, balancedEntry())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, companyX, out.CompanyID)
	assert.Equal(t, "2025-03-15", out.EntryDate)
	assert.Equal(t, staffUser, out.CreatedBy)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "119000.00", out.Lines[0].Debit, "montos con dos decimales en la respuesta")

	require.Len(t, repo.entries, 1, "el asiento debe quedar persistido")
	assert.True(t, repo.entries[0].IsBalanced())
}

func TestJournalCreate_AsientoDescuadradoRechazado(t *testing.T) {
	uc := usecase.NewJournalUseCase(&fakeJournalRepo{})

	in := balancedEntry()
	in.Lines[1].Credit = amount("118000") // descuadre de 1000

	_, err := uc.CreateEntry(context.Background(), companyX, staffUser, in)
	assert.Equal(t, domain.ErrUnbalancedEntry, err)
}

func TestJournalCreate_Validaciones(t *testing.T) {
	uc := usecase.NewJournalUseCase(&fakeJournalRepo{})

	t.Run("menos de dos líneas", func(t *testing.T) {
		in := balancedEntry()
		in.Lines = in.Lines[:1]
		_, err := uc.CreateEntry(context.Background(), companyX, staffUser, in)
		assert.Equal(t, domain.ErrInvalidInput, err)
	})

	t.Run("fecha inválida", func(t *testing.T) {
		in := balancedEntry()
		in.EntryDate = "15/03/2025"
		_, err := uc.CreateEntry(context.Background(), companyX, staffUser, in)
		assert.Equal(t, domain.ErrInvalidInput, err)
	})

	t.Run("línea con débito y crédito a la vez", func(t *testing.T) {
		in := balancedEntry()
		in.Lines[0].Credit = amount("119000")
		in.Lines[1].Debit = amount("119000")
		_, err := uc.CreateEntry(context.Background(), companyX, staffUser, in)
		assert.Equal(t, domain.ErrInvalidInput, err)
	})

	t.Run("monto negativo", func(t *testing.T) {
		in := balancedEntry()
		in.Lines[0].Debit = amount("-5")
		in.Lines[1].Credit = amount("-5")
		_, err := uc.CreateEntry(context.Background(), companyX, staffUser, in)
		assert.Equal(t, domain.ErrInvalidInput, err)
	})

	t.Run("asiento en ceros", func(t *testing.T) {
		in := balancedEntry()
		in.Lines[0].Debit = decimal.Zero
		in.Lines[1].Credit = decimal.Zero
		_, err := uc.CreateEntry(context.Background(), companyX, staffUser, in)
		assert.Equal(t, domain.ErrInvalidInput, err)
	})

	t.Run("línea sin cuenta", func(t *testing.T) {
		in := balancedEntry()
		in.Lines[0].AccountCode = ""
		_, err := uc.CreateEntry(context.Background(), companyX, staffUser, in)
		assert.Equal(t, domain.ErrInvalidInput, err)
	})
}

func TestJournalList_Paginacion(t *testing.T) {
	repo := &fakeJournalRepo{}
	uc := usecase.NewJournalUseCase(repo)

	for i := 0; i < 3; i++ {
		_, err := uc.CreateEntry(context.Background(), companyX, staffUser, balancedEntry())
		require.NoError(t, err)
	}

	out, err := uc.ListByCompany(context.Background(), companyX, dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Limit)

	out, err = uc.ListByCompany(context.Background(), companyX, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}
