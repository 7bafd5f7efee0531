package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contaflow-api/internal/application/auth"
	"github.com/tu-usuario/contaflow-api/internal/application/session"
	"github.com/tu-usuario/contaflow-api/internal/application/usecase"
	"github.com/tu-usuario/contaflow-api/internal/infrastructure/cache"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	SessionUC        *session.UseCase
	CompanyUC        *usecase.CompanyUseCase
	JournalUC        *usecase.JournalUseCase
	ReconciliationUC *usecase.ReconciliationUseCase
	Cache            cache.Client // nil desactiva el rate limiting de login
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	sessionHandler := NewSessionHandler(deps.SessionUC)

	// Limpieza de cookies de auth: fuera de /api y sin sesión requerida,
	// para poder salir de un estado de tokens rotos.
	app.Get("/auth/clear", sessionHandler.ClearAuth)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	if deps.Cache != nil {
		authGroup.Post("/login", RateLimitLogin(deps.Cache), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas protegidas (requieren sesión: Bearer token o cookie)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión/tenant (protegido)
	sessionGroup := protected.Group("/session")
	sessionGroup.Get("/landing", sessionHandler.Landing)
	sessionGroup.Post("/company", sessionHandler.SwitchCompany)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.SessionUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Journals (protegido, por empresa)
	journalHandler := NewJournalHandler(deps.JournalUC, deps.SessionUC)
	companies.Post("/:id/journal-entries", journalHandler.Create)
	companies.Get("/:id/journal-entries", journalHandler.List)

	// Reconciliación (protegido, por empresa)
	reconHandler := NewReconciliationHandler(deps.ReconciliationUC, deps.SessionUC)
	companies.Get("/:id/reconciliation", reconHandler.List)
}
