package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthenticated    = errors.New("sesión no válida")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnbalancedEntry    = errors.New("el asiento no cuadra: débitos y créditos difieren")

	// ErrOnlyAdminCreatesCompany se devuelve tal cual al cliente; el mensaje
	// es parte del contrato de la API.
	ErrOnlyAdminCreatesCompany = errors.New("Only Admin users can create companies.")
)

// Fragmentos de mensaje que delatan un esquema desactualizado en el backend
// (cache de esquema vieja, tabla aún no migrada). Comparación case-insensitive.
var schemaStaleFragments = []string{
	"schema cache",
	"does not exist",
	"relation does not exist",
}

// IsSchemaCacheStale detecta, por heurística sobre el mensaje, si un error
// proviene de un esquema desactualizado. Solo sirve para decidir si mostrar
// el aviso "la base de datos se está actualizando"; nunca para recuperar.
func IsSchemaCacheStale(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, frag := range schemaStaleFragments {
		if strings.Contains(msg, frag) {
			return true
		}
	}
	return false
}

// SchemaStaleHint es el aviso que acompaña a errores detectados por
// IsSchemaCacheStale.
const SchemaStaleHint = "la base de datos se está actualizando, reintente en unos segundos"
