package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/application/session"
)

// SessionHandler maneja la resolución de sesión/tenant: ruta de aterrizaje,
// cambio de empresa activa y limpieza de cookies de auth.
type SessionHandler struct {
	uc *session.UseCase
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(uc *session.UseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Landing godoc
// @Summary      Decidir vista de aterrizaje según roles y empresa activa
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.LandingResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/landing [get]
func (h *SessionHandler) Landing(c *fiber.Ctx) error {
	out, err := h.uc.Landing(c.Context(), GetUserID(c), GetActiveCompanyID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// SwitchCompany godoc
// @Summary      Cambiar la empresa activa de la sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchCompanyRequest  true  "company_id"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/company [post]
//
// La selección no se valida contra los roles del usuario: si la empresa no
// le corresponde, las pantallas posteriores muestran vacío o deniegan
// (fail-soft en el punto de uso, no en el de selección).
func (h *SessionHandler) SwitchCompany(c *fiber.Ctx) error {
	var in dto.SwitchCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id es requerido"})
	}
	setActiveCompanyCookie(c, in.CompanyID)
	return c.JSON(fiber.Map{"ok": true})
}

// ClearAuth godoc
// @Summary      Borrar cookies de auth y tenant
// @Tags         session
// @Produce      json
// @Param        next  query  string  false  "URL de redirección tras limpiar"
// @Success      200   {object}  map[string]bool
// @Success      303   {string}  string  "redirect a next"
// @Router       /auth/clear [get]
//
// Siempre expira las cinco cookies (empresa activa + tokens). Con ?next=
// redirige a esa URL; sin next responde {"ok":true}.
func (h *SessionHandler) ClearAuth(c *fiber.Ctx) error {
	clearAuthCookies(c)
	if next := c.Query("next"); next != "" {
		return c.Redirect(next, fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"ok": true})
}
