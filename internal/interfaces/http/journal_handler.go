package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/application/session"
	"github.com/tu-usuario/contaflow-api/internal/application/usecase"
	"github.com/tu-usuario/contaflow-api/internal/domain"
)

// JournalHandler maneja asientos contables por empresa.
type JournalHandler struct {
	uc        *usecase.JournalUseCase
	sessionUC *session.UseCase
}

// NewJournalHandler construye el handler de asientos.
func NewJournalHandler(uc *usecase.JournalUseCase, sessionUC *session.UseCase) *JournalHandler {
	return &JournalHandler{uc: uc, sessionUC: sessionUC}
}

// requireCompanyAccess valida que el usuario tenga rol sobre la empresa de
// la ruta. Devuelve el companyID o escribe la respuesta de error.
func (h *JournalHandler) requireCompanyAccess(c *fiber.Ctx) (string, error) {
	companyID := c.Params("id")
	if companyID == "" {
		return "", c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de empresa requerido"})
	}
	ok, err := h.sessionUC.HasCompanyAccess(c.Context(), GetUserID(c), companyID)
	if err != nil {
		return "", internalError(c, err)
	}
	if !ok {
		return "", c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a esta empresa"})
	}
	return companyID, nil
}

// Create godoc
// @Summary      Registrar asiento contable
// @Tags         journals
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateJournalEntryRequest  true  "asiento con líneas"
// @Success      201   {object}  dto.JournalEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/journal-entries [post]
func (h *JournalHandler) Create(c *fiber.Ctx) error {
	companyID, errResp := h.requireCompanyAccess(c)
	if companyID == "" {
		return errResp
	}
	var in dto.CreateJournalEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateEntry(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		if err == domain.ErrUnbalancedEntry {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNBALANCED", Message: err.Error()})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "asiento inválido: fecha, cuentas y montos no negativos, mínimo dos líneas"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar asientos de la empresa
// @Tags         journals
// @Produce      json
// @Param        id      path   string  true   "ID de la empresa"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.JournalEntryListResponse
// @Router       /api/companies/{id}/journal-entries [get]
func (h *JournalHandler) List(c *fiber.Ctx) error {
	companyID, errResp := h.requireCompanyAccess(c)
	if companyID == "" {
		return errResp
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListByCompany(c.Context(), companyID, page)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
