package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sathyaAB/DairyX/internal/application/dto"
	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
)

// PaymentHandler maneja las peticiones HTTP de pagos.
type PaymentHandler struct {
	uc *ledger.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *ledger.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create registra un abono contra una venta. POST /api/payment.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return badBody(c)
	}
	payment, err := h.uc.CreatePayment(c.Context(), in.SaleID, in.Amount, in.Method, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPaymentResponse(payment))
}

// ListBySale devuelve los pagos de una venta. GET /api/payment?sale_id=...
func (h *PaymentHandler) ListBySale(c *fiber.Ctx) error {
	payments, err := h.uc.ListBySale(c.Query("sale_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, *toPaymentResponse(p))
	}
	return c.JSON(fiber.Map{"payments": out, "results": len(out)})
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:     p.ID,
		SaleID: p.SaleID,
		Amount: p.Amount,
		Method: p.Method,
		Date:   p.Date.Format(dto.DateLayout),
	}
}
