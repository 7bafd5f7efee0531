package repository

import (
	"context"

	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// ListByUser devuelve las empresas donde el usuario tiene algún rol.
	ListByUser(ctx context.Context, userID string) ([]*entity.Company, error)
}
