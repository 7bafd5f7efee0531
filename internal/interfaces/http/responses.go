package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contaflow-api/internal/application/dto"
	"github.com/tu-usuario/contaflow-api/internal/domain"
)

// internalError responde 500 con el mensaje del error tal cual (sin retry ni
// clasificación). Si la heurística de esquema desactualizado aplica, adjunta
// el hint para que la UI muestre el aviso de "base de datos actualizándose".
func internalError(c *fiber.Ctx, err error) error {
	out := dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	if domain.IsSchemaCacheStale(err) {
		out.Hint = domain.SchemaStaleHint
	}
	return c.Status(fiber.StatusInternalServerError).JSON(out)
}
