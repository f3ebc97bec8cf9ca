package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/application/usecase"
)

// EventHandler maneja las peticiones HTTP de eventos.
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// List GET /api/events?filter=mine|unassigned
func (h *EventHandler) List(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	var (
		list interface{}
		err  error
	)
	switch c.Query("filter") {
	case "mine":
		list, err = h.uc.ListMine(identity)
	case "unassigned":
		list, err = h.uc.ListUnassigned(identity)
	case "":
		list, err = h.uc.List(identity)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filter debe ser mine o unassigned"})
	}
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/events
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.uc.Create(c.Context(), GetIdentity(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// Assign PUT /api/events/:id/assign
func (h *EventHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.uc.Assign(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(event)
}

// Update PUT /api/events/:id
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.uc.Update(GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(event)
}

// GetByID GET /api/events/:id
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	event, err := h.uc.GetByID(GetIdentity(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(event)
}
