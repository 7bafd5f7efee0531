package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/pkg/jwt"
)

// Locals keys para la identidad y el tenant resueltos por request.
const (
	LocalUserID          = "user_id"
	LocalUserEmail       = "user_email"
	LocalActiveCompanyID = "active_company_id"
)

// AuthMiddleware resuelve la sesión: valida el JWT (header Authorization o
// cookie sb-access-token) y deja en c.Locals la identidad del usuario más la
// empresa activa leída de la cookie. La empresa activa NO se valida aquí
// contra los roles; esa decisión es de la puerta de autorización.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Cookies(AccessTokenCookie)
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "credenciales de sesión requeridas"})
		}
		userID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserEmail, email)
		c.Locals(LocalActiveCompanyID, c.Cookies(ActiveCompanyCookie))
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserEmail devuelve el email del contexto.
func GetUserEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalUserEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetActiveCompanyID devuelve la empresa activa de la sesión, o "" si la
// cookie no está presente.
func GetActiveCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalActiveCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
