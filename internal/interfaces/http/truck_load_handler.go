package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/domain"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
)

// TruckLoadHandler maneja las peticiones HTTP de cargas de camión.
type TruckLoadHandler struct {
	uc *ledger.TruckLoadUseCase
}

// NewTruckLoadHandler construye el handler.
func NewTruckLoadHandler(uc *ledger.TruckLoadUseCase) *TruckLoadHandler {
	return &TruckLoadHandler{uc: uc}
}

// Create registra una carga (lote de salida con débito verificado de stock).
// POST /api/truck-load. Si alguna línea excede el stock responde 409 con el
// detalle y nada queda aplicado.
func (h *TruckLoadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTruckLoadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return badBody(c)
	}
	load, err := h.uc.CreateTruckLoad(c.Context(), in.DriverID, in.TruckID, date, toLineItems(in.Products))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTruckLoadResponse(load))
}

// History devuelve todas las cargas. GET /api/truck-load/history.
func (h *TruckLoadHandler) History(c *fiber.Ctx) error {
	loads, err := h.uc.History()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TruckLoadResponse, 0, len(loads))
	for _, l := range loads {
		out = append(out, *toTruckLoadResponse(l))
	}
	return c.JSON(fiber.Map{"truck_loads": out, "results": len(out)})
}

// GetByID devuelve una carga. GET /api/truck-load/:id.
func (h *TruckLoadHandler) GetByID(c *fiber.Ctx) error {
	load, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if load == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(toTruckLoadResponse(load))
}

// Lines devuelve las líneas de una carga. GET /api/truck-load/:id/products.
func (h *TruckLoadHandler) Lines(c *fiber.Ctx) error {
	lines, err := h.uc.Lines(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LineItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.LineItemResponse{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return c.JSON(fiber.Map{"products": out, "results": len(out)})
}

func toTruckLoadResponse(l *entity.TruckLoad) *dto.TruckLoadResponse {
	return &dto.TruckLoadResponse{
		ID:        l.ID,
		DriverID:  l.DriverID,
		TruckID:   l.TruckID,
		Date:      l.Date.Format(dto.DateLayout),
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}
