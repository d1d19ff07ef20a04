package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de viáticos (ledger de caja independiente).
// ──────────────────────────────────────────────────────────────────────────────

func newAllowanceUC(s *memStore) *ledger.AllowanceUseCase {
	return ledger.NewAllowanceUseCase(&memTxRunner{s: s}, &memAllowanceRepo{s: s})
}

func TestCreateAllowance_Registra(t *testing.T) {
	s := newMemStore()
	uc := newAllowanceUC(s)

	allowance, err := uc.CreateAllowance(context.Background(), testDate, decimal.NewFromFloat(120.0), "ruta norte")
	require.NoError(t, err)
	require.NotNil(t, allowance)
	assert.Equal(t, "ruta norte", allowance.Notes)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Amount.Equal(decimal.NewFromFloat(120.0)))
}

func TestCreateAllowance_EntradaInvalida(t *testing.T) {
	s := newMemStore()
	uc := newAllowanceUC(s)
	ctx := context.Background()

	_, err := uc.CreateAllowance(ctx, testDate, decimal.Zero, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero rechazado")

	_, err = uc.CreateAllowance(ctx, testDate, decimal.NewFromFloat(-10.0), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto negativo rechazado")
}

func TestCreateTruckAllowance_Reparte(t *testing.T) {
	s := newMemStore()
	uc := newAllowanceUC(s)
	ctx := context.Background()

	allowance, err := uc.CreateAllowance(ctx, testDate, decimal.NewFromFloat(120.0), "")
	require.NoError(t, err)

	ta, err := uc.CreateTruckAllowance(ctx, allowance.ID, testTruckID, decimal.NewFromFloat(40.0))
	require.NoError(t, err)
	assert.Equal(t, allowance.ID, ta.AllowanceID)

	tas, err := uc.TruckAllowances(allowance.ID)
	require.NoError(t, err)
	require.Len(t, tas, 1)
	assert.True(t, tas[0].Amount.Equal(decimal.NewFromFloat(40.0)))
}

func TestCreateTruckAllowance_ViaticoInexistente(t *testing.T) {
	s := newMemStore()
	uc := newAllowanceUC(s)

	_, err := uc.CreateTruckAllowance(context.Background(), "no-existe", testTruckID, decimal.NewFromFloat(40.0))
	require.ErrorIs(t, err, domain.ErrNotFound)

	tas, err := uc.TruckAllowances("no-existe")
	require.NoError(t, err)
	assert.Empty(t, tas, "el reparto rechazado no debe quedar registrado")
}
