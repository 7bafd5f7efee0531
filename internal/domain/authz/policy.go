// Package authz contiene las decisiones de autorización puras del sistema:
// funciones sin I/O sobre el conjunto de roles de un usuario. Las reglas de
// negocio viven aquí; los handlers y use cases solo las invocan.
package authz

import "github.com/tu-usuario/contaflow-api/internal/domain/entity"

// Rutas de aterrizaje según el rol sobre la empresa activa.
const (
	AdminCompaniesRoute = "/admin/companies"
	StaffJournalsRoute  = "/journals"
)

// IsCompanyAdmin informa si el usuario es admin de la empresa indicada.
func IsCompanyAdmin(roles []entity.UserCompanyRole, companyID string) bool {
	if companyID == "" {
		return false
	}
	for _, r := range roles {
		if r.CompanyID == companyID && r.Role == entity.RoleAdmin {
			return true
		}
	}
	return false
}

// HasAdminRole informa si el usuario es admin de AL MENOS una empresa,
// sin importar cuál. Es la regla que habilita crear empresas nuevas.
func HasAdminRole(roles []entity.UserCompanyRole) bool {
	for _, r := range roles {
		if r.Role == entity.RoleAdmin {
			return true
		}
	}
	return false
}

// HasCompanyAccess informa si el usuario tiene algún rol sobre la empresa.
func HasCompanyAccess(roles []entity.UserCompanyRole, companyID string) bool {
	for _, r := range roles {
		if r.CompanyID == companyID {
			return true
		}
	}
	return false
}

// LandingRoute decide la vista de aterrizaje: admin de la empresa activa va
// al listado de empresas de administración; cualquier otro caso (staff, sin
// empresa activa, sin roles) va a la vista de asientos.
func LandingRoute(roles []entity.UserCompanyRole, activeCompanyID string) string {
	if IsCompanyAdmin(roles, activeCompanyID) {
		return AdminCompaniesRoute
	}
	return StaffJournalsRoute
}
