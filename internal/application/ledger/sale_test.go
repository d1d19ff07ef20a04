package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/domain"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ventas (cuentas por cobrar con snapshot de precios).
// ──────────────────────────────────────────────────────────────────────────────

const (
	testLoadID = "00000000-0000-0000-0000-000000000030"
	testShopID = "00000000-0000-0000-0000-000000000040"
)

func newSaleUC(s *memStore) *ledger.SaleUseCase {
	return ledger.NewSaleUseCase(&memTxRunner{s: s}, &memSaleRepo{s: s})
}

func TestCreateSale_TotalDePreciosVigentes(t *testing.T) {
	s := newMemStore()
	leche := s.seedProduct("Leche entera", decimal.NewFromFloat(10.0))
	yogur := s.seedProduct("Yogur natural", decimal.NewFromFloat(2.5))
	uc := newSaleUC(s)

	sale, err := uc.CreateSale(context.Background(), testLoadID, testShopID, testDate, []ledger.LineItem{
		{ProductID: leche, Quantity: 20},
		{ProductID: yogur, Quantity: 4},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	// 20×10.0 + 4×2.5 = 210.0
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromFloat(210.0)),
		"total esperado 210.0, fue %s", sale.TotalAmount)
	assert.True(t, sale.PaidAmount.IsZero(), "una venta nueva abre sin abonos")
	assert.Equal(t, entity.SaleStatusPending, sale.Status)

	lines, err := uc.Lines(sale.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestCreateSale_SnapshotInmuneACambioDePrecio(t *testing.T) {
	s := newMemStore()
	leche := s.seedProduct("Leche entera", decimal.NewFromFloat(10.0))
	uc := newSaleUC(s)

	sale, err := uc.CreateSale(context.Background(), testLoadID, testShopID, testDate, []ledger.LineItem{
		{ProductID: leche, Quantity: 20},
	})
	require.NoError(t, err)
	require.True(t, sale.TotalAmount.Equal(decimal.NewFromFloat(200.0)))

	// Sube el precio después de vender: el total de la venta no se recalcula.
	products := &memProductRepo{s: s}
	p, err := products.GetByID(leche)
	require.NoError(t, err)
	p.Price = decimal.NewFromFloat(99.0)
	p.UpdatedAt = time.Now()
	require.NoError(t, products.Update(p))

	reloaded, err := uc.GetByID(sale.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.NewFromFloat(200.0)),
		"el snapshot de precios debe sobrevivir al cambio de precio del producto")
}

func TestCreateSale_NoTocaStock(t *testing.T) {
	s := newMemStore()
	leche := s.seedProduct("Leche entera", decimal.NewFromFloat(10.0))
	seedStock(t, s, leche, 70)
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), testLoadID, testShopID, testDate, []ledger.LineItem{
		{ProductID: leche, Quantity: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 70, s.stockOf(leche), "vender no descuenta stock de bodega; eso ya lo hizo la carga")
}

func TestCreateSale_ProductoInexistente_NadaPersiste(t *testing.T) {
	s := newMemStore()
	leche := s.seedProduct("Leche entera", decimal.NewFromFloat(10.0))
	uc := newSaleUC(s)

	_, err := uc.CreateSale(context.Background(), testLoadID, testShopID, testDate, []ledger.LineItem{
		{ProductID: leche, Quantity: 1},
		{ProductID: "no-existe", Quantity: 1},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	sales, err := uc.ListByShop(testShopID)
	require.NoError(t, err)
	assert.Empty(t, sales, "la venta rechazada no debe quedar registrada")
}

func TestCreateSale_EntradaInvalida(t *testing.T) {
	s := newMemStore()
	leche := s.seedProduct("Leche entera", decimal.NewFromFloat(10.0))
	uc := newSaleUC(s)
	ctx := context.Background()

	_, err := uc.CreateSale(ctx, "", testShopID, testDate, []ledger.LineItem{{ProductID: leche, Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateSale(ctx, testLoadID, "", testDate, []ledger.LineItem{{ProductID: leche, Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateSale(ctx, testLoadID, testShopID, testDate, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByShop_SoloDeLaTienda(t *testing.T) {
	s := newMemStore()
	leche := s.seedProduct("Leche entera", decimal.NewFromFloat(10.0))
	uc := newSaleUC(s)
	ctx := context.Background()

	_, err := uc.CreateSale(ctx, testLoadID, testShopID, testDate, []ledger.LineItem{{ProductID: leche, Quantity: 1}})
	require.NoError(t, err)
	_, err = uc.CreateSale(ctx, testLoadID, "otra-tienda", testDate, []ledger.LineItem{{ProductID: leche, Quantity: 2}})
	require.NoError(t, err)

	sales, err := uc.ListByShop(testShopID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, testShopID, sales[0].ShopID)
}
