package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-eventos/internal/application/auth"
	"github.com/tu-usuario/crm-eventos/internal/application/usecase"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	UserUC     *usecase.UserUseCase
	ClientUC   *usecase.ClientUseCase
	ContractUC *usecase.ContractUseCase
	EventUC    *usecase.EventUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; me requiere token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.AuthUC), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	// Users (GESTION)
	users := protected.Group("/users", RequireRole(entity.RoleGestion))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", RequireRole(entity.RoleCommercial), clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Contracts
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Get("/", contractHandler.List)
	contracts.Post("/", RequireRole(entity.RoleGestion), contractHandler.Create)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Post("/:id/sign", contractHandler.Sign)

	// Events
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Get("/", eventHandler.List)
	events.Post("/", RequireRole(entity.RoleCommercial), eventHandler.Create)
	events.Get("/:id", eventHandler.GetByID)
	events.Put("/:id/assign", RequireRole(entity.RoleGestion), eventHandler.Assign)
	events.Put("/:id", eventHandler.Update)
}
