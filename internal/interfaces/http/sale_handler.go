package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/domain"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc *ledger.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *ledger.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create abre una cuenta por cobrar con el total calculado a precios vigentes.
// POST /api/sales.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return badBody(c)
	}
	sale, err := h.uc.CreateSale(c.Context(), in.TruckLoadID, in.ShopID, date, toLineItems(in.Products))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

// GetByID devuelve una venta. GET /api/sales/:id.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if sale == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(toSaleResponse(sale))
}

// ListByShop devuelve las ventas de una tienda. GET /api/sales?shop_id=...
func (h *SaleHandler) ListByShop(c *fiber.Ctx) error {
	sales, err := h.uc.ListByShop(c.Query("shop_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return c.JSON(fiber.Map{"sales": out, "results": len(out)})
}

// Lines devuelve las líneas de una venta. GET /api/sales/:id/products.
func (h *SaleHandler) Lines(c *fiber.Ctx) error {
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

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		TruckLoadID: s.TruckLoadID,
		ShopID:      s.ShopID,
		Date:        s.Date.Format(dto.DateLayout),
		Status:      s.Status,
		TotalAmount: s.TotalAmount,
		PaidAmount:  s.PaidAmount,
	}
}
