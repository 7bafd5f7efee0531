package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cookies de sesión/tenant. Los nombres sb-*/supabase-* vienen del frontend
// heredado; el endpoint de limpieza debe seguir borrándolos todos.
const (
	ActiveCompanyCookie = "activeCompanyId"
	AccessTokenCookie   = "sb-access-token"
	RefreshTokenCookie  = "sb-refresh-token"
	LegacyAuthCookie    = "supabase-auth-token"
	AuthTokenCookie     = "sb-auth-token"
)

// authCookieNames todas las cookies que borra el clear-auth / logout.
var authCookieNames = []string{
	ActiveCompanyCookie,
	AccessTokenCookie,
	RefreshTokenCookie,
	LegacyAuthCookie,
	AuthTokenCookie,
}

// setActiveCompanyCookie persiste la empresa activa de la sesión.
func setActiveCompanyCookie(c *fiber.Ctx, companyID string) {
	c.Cookie(&fiber.Cookie{
		Name:     ActiveCompanyCookie,
		Value:    companyID,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearAuthCookies expira de inmediato todas las cookies de auth y tenant:
// valor vacío, path /, vencimiento en el pasado.
func clearAuthCookies(c *fiber.Ctx) {
	for _, name := range authCookieNames {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			MaxAge:   -1,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}
