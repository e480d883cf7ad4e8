package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wb-dev/mayoreo-api/internal/application/dto"
	"github.com/wb-dev/mayoreo-api/internal/application/wholesale"
	"github.com/wb-dev/mayoreo-api/internal/domain"
)

// OrderHandler maneja las órdenes de venta y los botones del flujo de
// aprobación financiera de mayoreo (protegido).
type OrderHandler struct {
	uc *wholesale.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *wholesale.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.CreateOrder(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// Update PATCH /api/orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.UpdateOrder(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetOrder(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// List GET /api/orders?limit=20&offset=0
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListOrders(GetActor(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// WholesaleDefaults GET /api/orders/wholesale-defaults
// Sugerencias de equipo y bodega al marcar mayoreo en la UI.
func (h *OrderHandler) WholesaleDefaults(c *fiber.Ctx) error {
	defaults, err := h.uc.WholesaleDefaults(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(defaults)
}

// Confirm POST /api/orders/:id/confirm
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	order, err := h.uc.Confirm(GetActor(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "solo se confirman cotizaciones en borrador"})
		}
		return respondError(c, err)
	}
	return c.JSON(order)
}

// Cancel POST /api/orders/:id/cancel
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.uc.Cancel(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// Botones del flujo financiero. Invocarlos desde un estado origen no
// permitido no es error: devuelven la orden sin cambios.

// SetToReceived POST /api/orders/:id/received
func (h *OrderHandler) SetToReceived(c *fiber.Ctx) error {
	order, err := h.uc.SetToReceived(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// SetToValidation POST /api/orders/:id/validation
func (h *OrderHandler) SetToValidation(c *fiber.Ctx) error {
	order, err := h.uc.SetToValidation(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// SetToPartiallyCollected POST /api/orders/:id/partially-collected
func (h *OrderHandler) SetToPartiallyCollected(c *fiber.Ctx) error {
	order, err := h.uc.SetToPartiallyCollected(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// SetToCollected POST /api/orders/:id/collected
func (h *OrderHandler) SetToCollected(c *fiber.Ctx) error {
	order, err := h.uc.SetToCollected(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// SetToRejected POST /api/orders/:id/rejected
func (h *OrderHandler) SetToRejected(c *fiber.Ctx) error {
	order, err := h.uc.SetToRejected(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
