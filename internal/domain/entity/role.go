package entity

import "time"

// Roles conocidos dentro de una empresa. Solo "admin" tiene semántica propia
// (gestión de empresas); cualquier otro valor se trata como rol opaco de staff.
const (
	RoleAdmin    = "admin"
	RoleContador = "contador"
	RoleAuxiliar = "auxiliar"
)

// UserCompanyRole es la relación ternaria (usuario, empresa, rol).
// Invariante: a lo sumo un rol por par (user, company); lo garantiza el
// constraint único del esquema.
type UserCompanyRole struct {
	ID        string
	UserID    string
	CompanyID string
	Role      string
	CreatedAt time.Time
}
