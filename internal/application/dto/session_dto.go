package dto

// CompanyRoleResponse un rol del usuario sobre una empresa.
type CompanyRoleResponse struct {
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}

// LandingResponse decisión de ruta de aterrizaje para la sesión actual.
// Message solo viene cuando el usuario no tiene acceso a ninguna empresa.
type LandingResponse struct {
	Route           string                `json:"route"`
	ActiveCompanyID string                `json:"active_company_id,omitempty"`
	Roles           []CompanyRoleResponse `json:"roles"`
	Message         string                `json:"message,omitempty"`
}

// SwitchCompanyRequest entrada para cambiar la empresa activa de la sesión.
type SwitchCompanyRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
}
