package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wb-dev/mayoreo-api/internal/application/credit"
	"github.com/wb-dev/mayoreo-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes y su perfil de
// crédito (protegido).
type CustomerHandler struct {
	uc *credit.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *credit.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers?limit=20&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(GetActor(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// GetCreditProfile GET /api/customers/:id/credit
// Incluye el límite vigente (0 si no está aprobado) y si el actor puede
// editar el límite.
func (h *CustomerHandler) GetCreditProfile(c *fiber.Ctx) error {
	profile, err := h.uc.GetCreditProfile(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateCredit PATCH /api/customers/:id/credit
// La restricción de quién puede llamar (finanzas/admin) está en el router;
// el caso de uso es una mutación plana.
func (h *CustomerHandler) UpdateCredit(c *fiber.Ctx) error {
	var in dto.UpdateCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	profile, err := h.uc.UpdateCredit(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
