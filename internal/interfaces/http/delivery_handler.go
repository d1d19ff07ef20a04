package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
)

// DeliveryHandler maneja las peticiones HTTP de entregas a bodega.
type DeliveryHandler struct {
	uc *ledger.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *ledger.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Create registra una entrega (lote de entrada). POST /api/delivery.
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return badBody(c)
	}
	delivery, err := h.uc.CreateDelivery(c.Context(), in.UserID, date, toLineItems(in.Products))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDeliveryResponse(delivery))
}

// History devuelve las entregas de un usuario. GET /api/delivery/history?user_id=...
func (h *DeliveryHandler) History(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	deliveries, err := h.uc.HistoryByUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, *toDeliveryResponse(d))
	}
	return c.JSON(fiber.Map{"deliveries": out, "results": len(out)})
}

// Lines devuelve las líneas de una entrega. GET /api/delivery/:id/products.
func (h *DeliveryHandler) Lines(c *fiber.Ctx) error {
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

func toLineItems(in []dto.LineItemRequest) []ledger.LineItem {
	items := make([]ledger.LineItem, 0, len(in))
	for _, it := range in {
		items = append(items, ledger.LineItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:        d.ID,
		UserID:    d.UserID,
		Date:      d.Date.Format(dto.DateLayout),
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}
