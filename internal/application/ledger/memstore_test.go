package ledger_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria para los tests del núcleo contable.
//
// memStore guarda los registros en mapas y slices de valores (no punteros),
// así un snapshot es una copia barata y fiel. memTxRunner serializa las
// transacciones con txMu (el equivalente en memoria del bloqueo de fila de
// Postgres) y restaura el snapshot si fn falla, lo que permite afirmar
// atomicidad en los tests: tras un error no sobrevive ningún efecto parcial.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu   sync.Mutex // protege los mapas en accesos sueltos
	txMu sync.Mutex // serializa transacciones completas

	products        map[string]entity.Product
	stock           map[string]entity.WarehouseStock
	deliveries      map[string]entity.Delivery
	deliveryLines   []entity.DeliveryLine
	loads           map[string]entity.TruckLoad
	loadLines       []entity.TruckLoadLine
	sales           map[string]entity.Sale
	saleLines       []entity.SaleLine
	payments        []entity.Payment
	allowances      map[string]entity.Allowance
	truckAllowances []entity.TruckAllowance
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[string]entity.Product),
		stock:      make(map[string]entity.WarehouseStock),
		deliveries: make(map[string]entity.Delivery),
		loads:      make(map[string]entity.TruckLoad),
		sales:      make(map[string]entity.Sale),
		allowances: make(map[string]entity.Allowance),
	}
}

// seedProduct registra un producto y devuelve su ID.
func (s *memStore) seedProduct(name string, price decimal.Decimal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	now := time.Now()
	s.products[id] = entity.Product{
		ID: id, Name: name, Price: price, UnitType: "unidad",
		Commission: decimal.Zero, CreatedAt: now, UpdatedAt: now,
	}
	return id
}

func (s *memStore) stockOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[productID].Quantity
}

type memSnapshot struct {
	products        map[string]entity.Product
	stock           map[string]entity.WarehouseStock
	deliveries      map[string]entity.Delivery
	deliveryLines   []entity.DeliveryLine
	loads           map[string]entity.TruckLoad
	loadLines       []entity.TruckLoadLine
	sales           map[string]entity.Sale
	saleLines       []entity.SaleLine
	payments        []entity.Payment
	allowances      map[string]entity.Allowance
	truckAllowances []entity.TruckAllowance
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memSnapshot{
		products:        copyMap(s.products),
		stock:           copyMap(s.stock),
		deliveries:      copyMap(s.deliveries),
		deliveryLines:   append([]entity.DeliveryLine(nil), s.deliveryLines...),
		loads:           copyMap(s.loads),
		loadLines:       append([]entity.TruckLoadLine(nil), s.loadLines...),
		sales:           copyMap(s.sales),
		saleLines:       append([]entity.SaleLine(nil), s.saleLines...),
		payments:        append([]entity.Payment(nil), s.payments...),
		allowances:      copyMap(s.allowances),
		truckAllowances: append([]entity.TruckAllowance(nil), s.truckAllowances...),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.stock = snap.stock
	s.deliveries = snap.deliveries
	s.deliveryLines = snap.deliveryLines
	s.loads = snap.loads
	s.loadLines = snap.loadLines
	s.sales = snap.sales
	s.saleLines = snap.saleLines
	s.payments = snap.payments
	s.allowances = snap.allowances
	s.truckAllowances = snap.truckAllowances
}

// ─── fakes de repositorio ─────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(productID string) (*entity.WarehouseStock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stock[productID]
	if !ok {
		return &entity.WarehouseStock{ProductID: productID, Quantity: 0}, nil
	}
	return &st, nil
}

func (r *memStockRepo) GetForUpdate(productID string) (*entity.WarehouseStock, error) {
	return r.Get(productID)
}

func (r *memStockRepo) Add(productID string, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st := r.s.stock[productID]
	st.ProductID = productID
	st.Quantity += qty
	st.UpdatedAt = time.Now()
	r.s.stock[productID] = st
	return nil
}

func (r *memStockRepo) Upsert(stock *entity.WarehouseStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stock[stock.ProductID] = *stock
	return nil
}

type memDeliveryRepo struct{ s *memStore }

func (r *memDeliveryRepo) Create(d *entity.Delivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deliveries[d.ID] = *d
	return nil
}

func (r *memDeliveryRepo) CreateLine(line *entity.DeliveryLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deliveryLines = append(r.s.deliveryLines, *line)
	return nil
}

func (r *memDeliveryRepo) ListByUser(userID string) ([]*entity.Delivery, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Delivery, 0)
	for _, d := range r.s.deliveries {
		if d.UserID == userID {
			cp := d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memDeliveryRepo) ListLines(deliveryID string) ([]*entity.DeliveryLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.DeliveryLine, 0)
	for _, l := range r.s.deliveryLines {
		if l.DeliveryID == deliveryID {
			cp := l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memTruckLoadRepo struct{ s *memStore }

func (r *memTruckLoadRepo) Create(load *entity.TruckLoad) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.loads[load.ID] = *load
	return nil
}

func (r *memTruckLoadRepo) CreateLine(line *entity.TruckLoadLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.loadLines = append(r.s.loadLines, *line)
	return nil
}

func (r *memTruckLoadRepo) GetByID(id string) (*entity.TruckLoad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.loads[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *memTruckLoadRepo) List() ([]*entity.TruckLoad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.TruckLoad, 0, len(r.s.loads))
	for _, l := range r.s.loads {
		cp := l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTruckLoadRepo) ListLines(truckLoadID string) ([]*entity.TruckLoadLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.TruckLoadLine, 0)
	for _, l := range r.s.loadLines {
		if l.TruckLoadID == truckLoadID {
			cp := l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = *sale
	return nil
}

func (r *memSaleRepo) CreateLine(line *entity.SaleLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.saleLines = append(r.s.saleLines, *line)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

func (r *memSaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *memSaleRepo) UpdatePayment(id string, paidAmount decimal.Decimal, status string, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale := r.s.sales[id]
	sale.PaidAmount = paidAmount
	sale.Status = status
	sale.UpdatedAt = updatedAt
	r.s.sales[id] = sale
	return nil
}

func (r *memSaleRepo) ListByShop(shopID string) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sale, 0)
	for _, sale := range r.s.sales {
		if sale.ShopID == shopID {
			cp := sale
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memSaleRepo) ListLines(saleID string) ([]*entity.SaleLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.SaleLine, 0)
	for _, l := range r.s.saleLines {
		if l.SaleID == saleID {
			cp := l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memPaymentRepo struct{ s *memStore }

func (r *memPaymentRepo) Create(p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments = append(r.s.payments, *p)
	return nil
}

func (r *memPaymentRepo) ListBySale(saleID string) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Payment, 0)
	for _, p := range r.s.payments {
		if p.SaleID == saleID {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memAllowanceRepo struct{ s *memStore }

func (r *memAllowanceRepo) Create(a *entity.Allowance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.allowances[a.ID] = *a
	return nil
}

func (r *memAllowanceRepo) GetByID(id string) (*entity.Allowance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.allowances[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memAllowanceRepo) List() ([]*entity.Allowance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Allowance, 0, len(r.s.allowances))
	for _, a := range r.s.allowances {
		cp := a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memAllowanceRepo) CreateTruckAllowance(ta *entity.TruckAllowance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.truckAllowances = append(r.s.truckAllowances, *ta)
	return nil
}

func (r *memAllowanceRepo) ListTruckAllowances(allowanceID string) ([]*entity.TruckAllowance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.TruckAllowance, 0)
	for _, ta := range r.s.truckAllowances {
		if ta.AllowanceID == allowanceID {
			cp := ta
			out = append(out, &cp)
		}
	}
	return out, nil
}

var (
	_ repository.ProductRepository   = (*memProductRepo)(nil)
	_ repository.StockRepository     = (*memStockRepo)(nil)
	_ repository.DeliveryRepository  = (*memDeliveryRepo)(nil)
	_ repository.TruckLoadRepository = (*memTruckLoadRepo)(nil)
	_ repository.SaleRepository      = (*memSaleRepo)(nil)
	_ repository.PaymentRepository   = (*memPaymentRepo)(nil)
	_ repository.AllowanceRepository = (*memAllowanceRepo)(nil)
)

// memTxRunner ejecuta fn serializada contra el almacén y deshace todo si falla.
type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) Run(_ context.Context, fn func(r ledger.Repos) error) error {
	tx.s.txMu.Lock()
	defer tx.s.txMu.Unlock()
	snap := tx.s.snapshot()
	if err := fn(reposFor(tx.s)); err != nil {
		tx.s.restore(snap)
		return err
	}
	return nil
}

var _ ledger.TxRunner = (*memTxRunner)(nil)

func reposFor(s *memStore) ledger.Repos {
	return ledger.Repos{
		Deliveries: &memDeliveryRepo{s: s},
		TruckLoads: &memTruckLoadRepo{s: s},
		Sales:      &memSaleRepo{s: s},
		Payments:   &memPaymentRepo{s: s},
		Allowances: &memAllowanceRepo{s: s},
		Stock:      &memStockRepo{s: s},
		Products:   &memProductRepo{s: s},
	}
}
