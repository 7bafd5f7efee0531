package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/domain"
	"github.com/tu-usuario/contaflow-api/internal/domain/authz"
	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
	"github.com/tu-usuario/contaflow-api/internal/domain/repository"
)

// CompanyTxRunner ejecuta un callback con repos de empresa y rol atados a una
// misma transacción. Lo implementa postgres.TxRunner.
type CompanyTxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		roleRepo repository.RoleRepository,
	) error) error
}

// CompanyUseCase aplica reglas de negocio para empresas.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	roleRepo    repository.RoleRepository
	txRunner    CompanyTxRunner
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, roleRepo repository.RoleRepository, txRunner CompanyTxRunner) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, roleRepo: roleRepo, txRunner: txRunner}
}

// Create crea una empresa nueva y otorga al creador el rol admin sobre ella.
// Regla de autorización: el creador debe ser admin de ALGUNA empresa (no
// necesariamente de la activa); si no, ErrOnlyAdminCreatesCompany y cero
// escrituras. Insert de empresa y grant de rol van en UNA transacción: o
// ambos quedan, o ninguno.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || len(in.BaseCurrency) != 3 || in.FYStartMonth < 1 || in.FYStartMonth > 12 {
		return nil, domain.ErrInvalidInput
	}

	roles, err := uc.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !authz.HasAdminRole(roles) {
		return nil, domain.ErrOnlyAdminCreatesCompany
	}

	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		BaseCurrency: in.BaseCurrency,
		FYStartMonth: in.FYStartMonth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	grant := &entity.UserCompanyRole{
		ID:        uuid.New().String(),
		UserID:    userID,
		CompanyID: company.ID,
		Role:      entity.RoleAdmin,
		CreatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(companyRepo repository.CompanyRepository, roleRepo repository.RoleRepository) error {
		if err := companyRepo.Create(ctx, company); err != nil {
			return err
		}
		return roleRepo.Grant(ctx, grant)
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// ListForUser lista las empresas donde el usuario tiene algún rol. La vista
// de administración parte de esta lista, nunca del catálogo completo.
func (uc *CompanyUseCase) ListForUser(ctx context.Context, userID string) (*dto.CompanyListResponse, error) {
	list, err := uc.companyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		BaseCurrency: c.BaseCurrency,
		FYStartMonth: c.FYStartMonth,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
