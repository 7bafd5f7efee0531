package entity

import "time"

// User representa una identidad del sistema. La pertenencia a empresas se
// modela aparte vía UserCompanyRole: un usuario puede tener acceso a varias
// empresas, con un rol distinto en cada una.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
