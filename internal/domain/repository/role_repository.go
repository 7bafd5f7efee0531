package repository

import (
	"context"

	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
)

// RoleRepository puerto de persistencia para la relación usuario-empresa-rol.
type RoleRepository interface {
	Grant(ctx context.Context, role *entity.UserCompanyRole) error
	// ListByUser devuelve los roles del usuario en todas sus empresas.
	// Sin acceso a ninguna empresa devuelve slice vacío, no error: es un
	// estado válido que la UI muestra como "sin acceso a empresas".
	ListByUser(ctx context.Context, userID string) ([]entity.UserCompanyRole, error)
}
