// Package session resuelve el contexto de tenant de una sesión: roles del
// usuario, empresa activa y decisión de ruta de aterrizaje.
package session

import (
	"context"

	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/domain/authz"
	"github.com/tu-usuario/contaflow-api/internal/domain/repository"
)

// NoCompanyAccessMessage se muestra cuando el usuario no tiene rol en
// ninguna empresa. Es un estado válido, no un error.
const NoCompanyAccessMessage = "No company access yet"

// UseCase casos de uso de sesión/tenant.
type UseCase struct {
	roleRepo repository.RoleRepository
}

// NewUseCase construye el caso de uso de sesión.
func NewUseCase(roleRepo repository.RoleRepository) *UseCase {
	return &UseCase{roleRepo: roleRepo}
}

// Landing decide la vista de aterrizaje del usuario según sus roles y la
// empresa activa de la cookie. La empresa activa NO se valida contra los
// roles en este punto: si no corresponde a ninguno, la decisión degrada a
// la vista de staff y las pantallas posteriores muestran vacío (fail-soft).
func (uc *UseCase) Landing(ctx context.Context, userID, activeCompanyID string) (*dto.LandingResponse, error) {
	roles, err := uc.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &dto.LandingResponse{
		Route:           authz.LandingRoute(roles, activeCompanyID),
		ActiveCompanyID: activeCompanyID,
		Roles:           make([]dto.CompanyRoleResponse, 0, len(roles)),
	}
	for _, r := range roles {
		out.Roles = append(out.Roles, dto.CompanyRoleResponse{CompanyID: r.CompanyID, Role: r.Role})
	}
	if len(roles) == 0 {
		out.Message = NoCompanyAccessMessage
	}
	return out, nil
}

// HasCompanyAccess informa si el usuario tiene algún rol sobre la empresa.
// Lo usan los handlers de recursos por empresa (asientos, conciliación).
func (uc *UseCase) HasCompanyAccess(ctx context.Context, userID, companyID string) (bool, error) {
	roles, err := uc.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return authz.HasCompanyAccess(roles, companyID), nil
}
