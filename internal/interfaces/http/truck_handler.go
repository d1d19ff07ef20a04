package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/application/usecase"
)

// TruckHandler maneja las peticiones HTTP de camiones.
type TruckHandler struct {
	uc *usecase.TruckUseCase
}

// NewTruckHandler construye el handler.
func NewTruckHandler(uc *usecase.TruckUseCase) *TruckHandler {
	return &TruckHandler{uc: uc}
}

// Create registra un camión. POST /api/trucks.
func (h *TruckHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTruckRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	truck, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(truck)
}

// GetByID devuelve un camión. GET /api/trucks/:id.
func (h *TruckHandler) GetByID(c *fiber.Ctx) error {
	truck, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(truck)
}

// List devuelve todos los camiones. GET /api/trucks.
func (h *TruckHandler) List(c *fiber.Ctx) error {
	trucks, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"trucks": trucks, "results": len(trucks)})
}

// UpdateMaxAllowance actualiza el tope de viáticos de un camión.
// PUT /api/trucks/max-allowance.
func (h *TruckHandler) UpdateMaxAllowance(c *fiber.Ctx) error {
	var in dto.UpdateTruckMaxAllowanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	truck, err := h.uc.UpdateMaxAllowance(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(truck)
}
