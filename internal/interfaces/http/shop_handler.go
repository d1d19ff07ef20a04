package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/application/usecase"
)

// ShopHandler maneja las peticiones HTTP de tiendas.
type ShopHandler struct {
	uc *usecase.ShopUseCase
}

// NewShopHandler construye el handler.
func NewShopHandler(uc *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// Create registra una tienda. POST /api/shops.
func (h *ShopHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	shop, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shop)
}

// GetByID devuelve una tienda. GET /api/shops/:id.
func (h *ShopHandler) GetByID(c *fiber.Ctx) error {
	shop, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shop)
}

// List devuelve todas las tiendas. GET /api/shops.
func (h *ShopHandler) List(c *fiber.Ctx) error {
	shops, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"shops": shops, "results": len(shops)})
}
