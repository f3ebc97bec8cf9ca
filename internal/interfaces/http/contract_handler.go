package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/application/usecase"
)

// ContractHandler maneja las peticiones HTTP de contratos.
type ContractHandler struct {
	uc *usecase.ContractUseCase
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// List GET /api/contracts?filter=unsigned|unpaid
func (h *ContractHandler) List(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	var (
		list interface{}
		err  error
	)
	switch c.Query("filter") {
	case "unsigned":
		list, err = h.uc.ListUnsigned(identity)
	case "unpaid":
		list, err = h.uc.ListUnpaid(identity)
	case "":
		list, err = h.uc.List(identity)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filter debe ser unsigned o unpaid"})
	}
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/contracts
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contract, err := h.uc.Create(GetIdentity(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contract)
}

// Sign POST /api/contracts/:id/sign
func (h *ContractHandler) Sign(c *fiber.Ctx) error {
	contract, err := h.uc.Sign(GetIdentity(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(contract)
}

// GetByID GET /api/contracts/:id
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	contract, err := h.uc.GetByID(GetIdentity(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(contract)
}
