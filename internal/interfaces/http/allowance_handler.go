package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
)

// AllowanceHandler maneja las peticiones HTTP de viáticos.
type AllowanceHandler struct {
	uc *ledger.AllowanceUseCase
}

// NewAllowanceHandler construye el handler.
func NewAllowanceHandler(uc *ledger.AllowanceUseCase) *AllowanceHandler {
	return &AllowanceHandler{uc: uc}
}

// Create registra un viático. POST /api/allowance.
func (h *AllowanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAllowanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return badBody(c)
	}
	allowance, err := h.uc.CreateAllowance(c.Context(), date, in.Amount, in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAllowanceResponse(allowance))
}

// List devuelve todos los viáticos. GET /api/allowance.
func (h *AllowanceHandler) List(c *fiber.Ctx) error {
	allowances, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AllowanceResponse, 0, len(allowances))
	for _, a := range allowances {
		out = append(out, *toAllowanceResponse(a))
	}
	return c.JSON(fiber.Map{"allowances": out, "results": len(out)})
}

// CreateTruckAllowance reparte un viático a un camión. POST /api/allowance/truck.
func (h *AllowanceHandler) CreateTruckAllowance(c *fiber.Ctx) error {
	var in dto.CreateTruckAllowanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ta, err := h.uc.CreateTruckAllowance(c.Context(), in.AllowanceID, in.TruckID, in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTruckAllowanceResponse(ta))
}

// ListTruckAllowances devuelve el reparto por camión de un viático.
// GET /api/allowance/:id/trucks.
func (h *AllowanceHandler) ListTruckAllowances(c *fiber.Ctx) error {
	tas, err := h.uc.TruckAllowances(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TruckAllowanceResponse, 0, len(tas))
	for _, ta := range tas {
		out = append(out, *toTruckAllowanceResponse(ta))
	}
	return c.JSON(fiber.Map{"truck_allowances": out, "results": len(out)})
}

func toAllowanceResponse(a *entity.Allowance) *dto.AllowanceResponse {
	return &dto.AllowanceResponse{
		ID:     a.ID,
		Date:   a.Date.Format(dto.DateLayout),
		Amount: a.Amount,
		Notes:  a.Notes,
	}
}

func toTruckAllowanceResponse(ta *entity.TruckAllowance) *dto.TruckAllowanceResponse {
	return &dto.TruckAllowanceResponse{
		ID:          ta.ID,
		AllowanceID: ta.AllowanceID,
		TruckID:     ta.TruckID,
		Amount:      ta.Amount,
	}
}
