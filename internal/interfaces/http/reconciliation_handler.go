package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/application/session"
	"github.com/tu-usuario/contaflow-api/internal/application/usecase"
)

// ReconciliationHandler expone la vista de conciliación mayor vs auxiliar.
type ReconciliationHandler struct {
	uc        *usecase.ReconciliationUseCase
	sessionUC *session.UseCase
}

// NewReconciliationHandler construye el handler de conciliación.
func NewReconciliationHandler(uc *usecase.ReconciliationUseCase, sessionUC *session.UseCase) *ReconciliationHandler {
	return &ReconciliationHandler{uc: uc, sessionUC: sessionUC}
}

// List godoc
// @Summary      Conciliación de cuentas de control de la empresa
// @Tags         reconciliation
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.ReconciliationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/reconciliation [get]
func (h *ReconciliationHandler) List(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de empresa requerido"})
	}
	ok, err := h.sessionUC.HasCompanyAccess(c.Context(), GetUserID(c), companyID)
	if err != nil {
		return internalError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin acceso a esta empresa"})
	}
	out, err := h.uc.ListForCompany(c.Context(), companyID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
