package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/contaflow-api/internal/domain"
	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
	"github.com/tu-usuario/contaflow-api/internal/domain/repository"
)

// Asegura que RoleRepo implementa repository.RoleRepository.
var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	db DBTX
}

// NewRoleRepository construye el adaptador para la relación usuario-empresa-rol.
func NewRoleRepository(db DBTX) *RoleRepo {
	return &RoleRepo{db: db}
}

// Grant persiste un rol de usuario sobre una empresa. El constraint único
// (user_id, company_id) garantiza a lo sumo un rol por par; duplicarlo
// devuelve domain.ErrDuplicate.
func (r *RoleRepo) Grant(ctx context.Context, role *entity.UserCompanyRole) error {
	query := `
		INSERT INTO user_company_roles (id, user_id, company_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		role.ID, role.UserID, role.CompanyID, role.Role, role.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("grant role: %w", err)
	}
	return nil
}

// ListByUser devuelve los roles del usuario. Sin filas devuelve slice vacío,
// no error.
func (r *RoleRepo) ListByUser(ctx context.Context, userID string) ([]entity.UserCompanyRole, error) {
	query := `
		SELECT id, user_id, company_id, role, created_at
		FROM user_company_roles WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list roles by user: %w", err)
	}
	defer rows.Close()

	list := make([]entity.UserCompanyRole, 0)
	for rows.Next() {
		var ucr entity.UserCompanyRole
		if err := rows.Scan(&ucr.ID, &ucr.UserID, &ucr.CompanyID, &ucr.Role, &ucr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, ucr)
	}
	return list, rows.Err()
}
