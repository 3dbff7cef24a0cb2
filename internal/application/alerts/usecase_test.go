package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts/internal/application/alerts"
	"github.com/jhoicas/stock-alerts/internal/domain"
	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	err       error
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *entity.Company) error { return f.err }
func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) GetByNIT(ctx context.Context, nit string) (*entity.Company, error) {
	return nil, f.err
}
func (f *fakeCompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	return nil, f.err
}

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return f.err }
func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, f.err
}
func (f *fakeProductRepo) GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Product, error) {
	return nil, f.err
}
func (f *fakeProductRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	return f.products, f.err
}
func (f *fakeProductRepo) ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Product, error) {
	return f.products, f.err
}

type fakeInventoryRepo struct {
	records []*entity.InventoryRecord
	err     error
}

func (f *fakeInventoryRepo) Upsert(ctx context.Context, r *entity.InventoryRecord) error {
	return f.err
}
func (f *fakeInventoryRepo) ListByCompany(ctx context.Context, companyID, warehouseID string) ([]*entity.InventoryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if warehouseID == "" {
		return f.records, nil
	}
	var out []*entity.InventoryRecord
	for _, r := range f.records {
		if r.WarehouseID == warehouseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSalesRepo struct {
	sales []*entity.SaleEvent
	err   error
}

func (f *fakeSalesRepo) Create(ctx context.Context, s *entity.SaleEvent) error { return f.err }
func (f *fakeSalesRepo) ListSince(ctx context.Context, companyID string, since time.Time, warehouseID string) ([]*entity.SaleEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.SaleEvent
	for _, s := range f.sales {
		if s.SoldAt.Before(since) {
			continue
		}
		if warehouseID != "" && s.WarehouseID != warehouseID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
	err        error
}

func (f *fakeWarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error { return f.err }
func (f *fakeWarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.warehouses[id], nil
}
func (f *fakeWarehouseRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	return nil, f.err
}
func (f *fakeWarehouseRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Warehouse, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Warehouse
	for _, id := range ids {
		if w, ok := f.warehouses[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
	err       error
}

func (f *fakeSupplierRepo) Create(ctx context.Context, s *entity.Supplier) error { return f.err }
func (f *fakeSupplierRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, f.err
}
func (f *fakeSupplierRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Supplier
	for _, id := range ids {
		if s, ok := f.suppliers[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeThresholdRepo struct {
	overrides map[string]int
	err       error
}

func (f *fakeThresholdRepo) GetOverrides(ctx context.Context, companyID string) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.overrides, nil
}
func (f *fakeThresholdRepo) Replace(ctx context.Context, companyID string, overrides map[string]int) error {
	f.overrides = overrides
	return f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso con datos de ejemplo
// ──────────────────────────────────────────────────────────────────────────────

const testEmpresaID = "11111111-1111-1111-1111-111111111111"

type testRepos struct {
	company   *fakeCompanyRepo
	product   *fakeProductRepo
	inventory *fakeInventoryRepo
	sales     *fakeSalesRepo
	warehouse *fakeWarehouseRepo
	supplier  *fakeSupplierRepo
	threshold *fakeThresholdRepo
}

func defaultRepos() *testRepos {
	supplierID := "prov-1"
	urgente := producto("p-urgente", domain.TypeOther, true)
	urgente.SupplierID = &supplierID
	tranquilo := producto("p-tranquilo", domain.TypeOther, true)

	return &testRepos{
		company: &fakeCompanyRepo{companies: map[string]*entity.Company{
			testEmpresaID: {ID: testEmpresaID, Name: "Comercial Andina", NIT: "900123456"},
		}},
		product: &fakeProductRepo{products: []*entity.Product{urgente, tranquilo}},
		inventory: &fakeInventoryRepo{records: []*entity.InventoryRecord{
			registro("p-urgente", testBodegaA, 2),
			registro("p-tranquilo", testBodegaA, 8),
		}},
		sales: &fakeSalesRepo{sales: []*entity.SaleEvent{
			venta("p-urgente", testBodegaA, 30),
			venta("p-tranquilo", testBodegaA, 6),
		}},
		warehouse: &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
			testBodegaA: {ID: testBodegaA, Name: "Bodega Central"},
		}},
		supplier: &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
			supplierID: {ID: supplierID, Name: "Distribuidora Norte", Email: "ventas@norte.co"},
		}},
		threshold: &fakeThresholdRepo{overrides: map[string]int{}},
	}
}

func buildUseCase(r *testRepos) *alerts.LowStockUseCase {
	return alerts.NewLowStockUseCase(
		r.company, r.product, r.inventory, r.sales,
		r.warehouse, r.supplier, r.threshold,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_CompanyIDInvalido(t *testing.T) {
	uc := buildUseCase(defaultRepos())

	_, err := uc.Compute(context.Background(), alerts.ComputeInput{CompanyID: "no-es-uuid"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestCompute_WarehouseIDInvalido(t *testing.T) {
	uc := buildUseCase(defaultRepos())

	_, err := uc.Compute(context.Background(), alerts.ComputeInput{
		CompanyID:   testEmpresaID,
		WarehouseID: "bodega-principal",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestCompute_EmpresaInexistente(t *testing.T) {
	uc := buildUseCase(defaultRepos())

	_, err := uc.Compute(context.Background(), alerts.ComputeInput{
		CompanyID: "22222222-2222-2222-2222-222222222222",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompute_FalloDeLecturaEsDataAccess(t *testing.T) {
	repos := defaultRepos()
	repos.sales.err = errors.New("connection refused")
	uc := buildUseCase(repos)

	_, err := uc.Compute(context.Background(), alerts.ComputeInput{CompanyID: testEmpresaID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataAccess, "los fallos de consulta se clasifican como acceso a datos")
}

func TestCompute_CaminoFeliz(t *testing.T) {
	uc := buildUseCase(defaultRepos())

	out, err := uc.Compute(context.Background(), alerts.ComputeInput{CompanyID: testEmpresaID})
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, out.Alerts, 2)
	assert.Equal(t, 2, out.TotalAlerts)
	assert.Equal(t, alerts.DefaultLimit, out.Filters.Limit)
	assert.Nil(t, out.Filters.WarehouseID)
	assert.Nil(t, out.Filters.ProductType)
	assert.False(t, out.GeneratedAt.IsZero())

	// p-urgente: stock 2, umbral 10 -> priority 0.2; 30 vendidas -> 1/día -> 2 días.
	primero := out.Alerts[0]
	assert.Equal(t, "p-urgente", primero.ProductID)
	assert.Equal(t, "Bodega Central", primero.WarehouseName)
	assert.Equal(t, 10, primero.Threshold)
	assert.True(t, decimal.NewFromInt(2).Equal(primero.CurrentStock))
	require.NotNil(t, primero.DaysUntilStockout)
	assert.Equal(t, int64(2), *primero.DaysUntilStockout)
	assert.Equal(t, "Distribuidora Norte", primero.Supplier.Name)

	segundo := out.Alerts[1]
	assert.Equal(t, "p-tranquilo", segundo.ProductID)
	assert.Equal(t, alerts.UnknownSupplierName, segundo.Supplier.Name)
}

func TestCompute_FiltrosSeReflejanEnLaSalida(t *testing.T) {
	uc := buildUseCase(defaultRepos())

	out, err := uc.Compute(context.Background(), alerts.ComputeInput{
		CompanyID:   testEmpresaID,
		WarehouseID: testBodegaA,
		ProductType: domain.TypeOther,
		Limit:       1,
	})
	require.NoError(t, err)

	assert.Len(t, out.Alerts, 1)
	assert.Equal(t, 2, out.TotalAlerts, "el total cuenta antes de aplicar el límite")
	require.NotNil(t, out.Filters.WarehouseID)
	assert.Equal(t, testBodegaA, *out.Filters.WarehouseID)
	require.NotNil(t, out.Filters.ProductType)
	assert.Equal(t, domain.TypeOther, *out.Filters.ProductType)
	assert.Equal(t, 1, out.Filters.Limit)
}

func TestCompute_OverrideDeUmbralExcluye(t *testing.T) {
	repos := defaultRepos()
	// Con el override, el umbral de "other" baja a 5: p-tranquilo (stock 8) sale.
	repos.threshold.overrides = map[string]int{domain.TypeOther: 5}
	uc := buildUseCase(repos)

	out, err := uc.Compute(context.Background(), alerts.ComputeInput{CompanyID: testEmpresaID})
	require.NoError(t, err)

	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "p-urgente", out.Alerts[0].ProductID)
}
