package alerts_test

import (
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
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testBodegaA = "00000000-0000-0000-0000-00000000000a"
	testBodegaB = "00000000-0000-0000-0000-00000000000b"
)

func producto(id, productType string, active bool) *entity.Product {
	return &entity.Product{
		ID:          id,
		CompanyID:   "empresa-1",
		SKU:         "SKU-" + id,
		Name:        "Producto " + id,
		ProductType: productType,
		IsActive:    &active,
	}
}

func registro(productID, warehouseID string, qty int64) *entity.InventoryRecord {
	return &entity.InventoryRecord{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    decimal.NewFromInt(qty),
	}
}

func venta(productID, warehouseID string, qty int64) *entity.SaleEvent {
	return &entity.SaleEvent{
		ID:          productID + "-" + warehouseID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    decimal.NewFromInt(qty),
		SoldAt:      time.Now().AddDate(0, 0, -1),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Etapa 1: selección de candidatos
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildCandidates_ExcluyeInactivosYSinInventario(t *testing.T) {
	products := []*entity.Product{
		producto("p1", domain.TypeFood, true),
		producto("p2", domain.TypeFood, false), // inactivo
		producto("p3", domain.TypeFood, true),  // sin registro de inventario
	}
	records := []*entity.InventoryRecord{
		registro("p1", testBodegaA, 5),
		registro("p2", testBodegaA, 5),
	}

	out := alerts.BuildCandidates(products, records, "", "")

	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].Product.ID)
}

func TestBuildCandidates_FlagActivoSinSetearCuentaComoActivo(t *testing.T) {
	p := producto("p1", domain.TypeOther, true)
	p.IsActive = nil
	records := []*entity.InventoryRecord{registro("p1", testBodegaA, 5)}

	out := alerts.BuildCandidates([]*entity.Product{p}, records, "", "")
	assert.Len(t, out, 1)
}

func TestBuildCandidates_FiltrosDeBodegaYTipo(t *testing.T) {
	products := []*entity.Product{
		producto("p1", domain.TypeElectronics, true),
		producto("p2", domain.TypeClothing, true),
	}
	records := []*entity.InventoryRecord{
		registro("p1", testBodegaA, 5),
		registro("p1", testBodegaB, 5),
		registro("p2", testBodegaA, 5),
	}

	porBodega := alerts.BuildCandidates(products, records, testBodegaB, "")
	require.Len(t, porBodega, 1)
	assert.Equal(t, testBodegaB, porBodega[0].Record.WarehouseID)

	porTipo := alerts.BuildCandidates(products, records, "", domain.TypeClothing)
	require.Len(t, porTipo, 1)
	assert.Equal(t, "p2", porTipo[0].Product.ID)
}

func TestBuildCandidates_UnCandidatoPorParProductoBodega(t *testing.T) {
	products := []*entity.Product{producto("p1", domain.TypeFood, true)}
	records := []*entity.InventoryRecord{
		registro("p1", testBodegaA, 5),
		registro("p1", testBodegaB, 7),
	}

	out := alerts.BuildCandidates(products, records, "", "")
	assert.Len(t, out, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Etapa 2: filtro de actividad
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterByActivity_SinVentasSeDescarta(t *testing.T) {
	candidates := alerts.BuildCandidates(
		[]*entity.Product{producto("p1", domain.TypeFood, true), producto("p2", domain.TypeFood, true)},
		[]*entity.InventoryRecord{registro("p1", testBodegaA, 5), registro("p2", testBodegaA, 5)},
		"", "",
	)
	sales := []*entity.SaleEvent{venta("p1", testBodegaA, 3)}

	out := alerts.FilterByActivity(candidates, sales)

	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].Product.ID)
	assert.True(t, decimal.NewFromInt(3).Equal(out[0].TotalSold))
	assert.Equal(t, 1, out[0].SalesCount)
}

func TestFilterByActivity_EstrictoPorBodega(t *testing.T) {
	// Ventas abundantes en la bodega A no califican al par en la bodega B.
	candidates := alerts.BuildCandidates(
		[]*entity.Product{producto("p1", domain.TypeFood, true)},
		[]*entity.InventoryRecord{registro("p1", testBodegaA, 5), registro("p1", testBodegaB, 5)},
		"", "",
	)
	sales := []*entity.SaleEvent{venta("p1", testBodegaA, 100)}

	out := alerts.FilterByActivity(candidates, sales)

	require.Len(t, out, 1)
	assert.Equal(t, testBodegaA, out[0].Record.WarehouseID)
}

func TestFilterByActivity_AgregaVariosEventos(t *testing.T) {
	candidates := alerts.BuildCandidates(
		[]*entity.Product{producto("p1", domain.TypeFood, true)},
		[]*entity.InventoryRecord{registro("p1", testBodegaA, 5)},
		"", "",
	)
	sales := []*entity.SaleEvent{
		venta("p1", testBodegaA, 3),
		venta("p1", testBodegaA, 7),
	}

	out := alerts.FilterByActivity(candidates, sales)

	require.Len(t, out, 1)
	assert.True(t, decimal.NewFromInt(10).Equal(out[0].TotalSold))
	assert.Equal(t, 2, out[0].SalesCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Etapa 3: evaluación de umbral
// ──────────────────────────────────────────────────────────────────────────────

func conVentas(t *testing.T, p *entity.Product, r *entity.InventoryRecord, sold int64) []alerts.Candidate {
	t.Helper()
	candidates := alerts.BuildCandidates([]*entity.Product{p}, []*entity.InventoryRecord{r}, "", "")
	return alerts.FilterByActivity(candidates, []*entity.SaleEvent{venta(p.ID, r.WarehouseID, sold)})
}

func TestApplyThresholds_ComparacionInclusiva(t *testing.T) {
	effective := domain.EffectiveThresholds(nil)

	enUmbral := conVentas(t, producto("p1", domain.TypeClothing, true), registro("p1", testBodegaA, 20), 5)
	out := alerts.ApplyThresholds(enUmbral, effective)
	require.Len(t, out, 1, "stock exactamente igual al umbral es alerta")
	assert.Equal(t, 20, out[0].Threshold)

	sobreUmbral := conVentas(t, producto("p2", domain.TypeClothing, true), registro("p2", testBodegaA, 21), 5)
	assert.Empty(t, alerts.ApplyThresholds(sobreUmbral, effective))
}

func TestApplyThresholds_UmbralPorTipo(t *testing.T) {
	effective := domain.EffectiveThresholds(nil)

	electronics := conVentas(t, producto("p1", domain.TypeElectronics, true), registro("p1", testBodegaA, 40), 5)
	assert.Len(t, alerts.ApplyThresholds(electronics, effective), 1, "40 <= 50")

	fuera := conVentas(t, producto("p2", domain.TypeElectronics, true), registro("p2", testBodegaA, 51), 5)
	assert.Empty(t, alerts.ApplyThresholds(fuera, effective), "51 > 50")
}

func TestApplyThresholds_TipoDesconocidoUsaOther(t *testing.T) {
	effective := domain.EffectiveThresholds(nil)

	raro := conVentas(t, producto("p1", "gadgets", true), registro("p1", testBodegaA, 10), 5)
	out := alerts.ApplyThresholds(raro, effective)
	require.Len(t, out, 1)
	assert.Equal(t, 10, out[0].Threshold)

	fuera := conVentas(t, producto("p2", "gadgets", true), registro("p2", testBodegaA, 11), 5)
	assert.Empty(t, alerts.ApplyThresholds(fuera, effective))
}

func TestApplyThresholds_OverrideDeEmpresa(t *testing.T) {
	effective := domain.EffectiveThresholds(map[string]int{domain.TypeElectronics: 45})

	dentro := conVentas(t, producto("p1", domain.TypeElectronics, true), registro("p1", testBodegaA, 45), 5)
	assert.Len(t, alerts.ApplyThresholds(dentro, effective), 1)

	fuera := conVentas(t, producto("p2", domain.TypeElectronics, true), registro("p2", testBodegaA, 46), 5)
	assert.Empty(t, alerts.ApplyThresholds(fuera, effective))
}

// ──────────────────────────────────────────────────────────────────────────────
// Etapa 4: ranking de urgencia
// ──────────────────────────────────────────────────────────────────────────────

func TestRankAlerts_DiasHastaStockout(t *testing.T) {
	// 30 unidades vendidas en 30 días -> 1/día; 10 en stock -> 10 días.
	candidates := conVentas(t, producto("p1", domain.TypeOther, true), registro("p1", testBodegaA, 10), 30)
	candidates = alerts.ApplyThresholds(candidates, domain.EffectiveThresholds(nil))
	require.Len(t, candidates, 1)

	out, total := alerts.RankAlerts(candidates, nil, nil, 100)

	require.Len(t, out, 1)
	assert.Equal(t, 1, total)
	require.NotNil(t, out[0].DaysUntilStockout)
	assert.Equal(t, int64(10), *out[0].DaysUntilStockout)
	assert.True(t, decimal.NewFromInt(1).Equal(out[0].SortPriority), "priority = 10/10")
}

func TestRankAlerts_RedondeoDeDias(t *testing.T) {
	effective := domain.EffectiveThresholds(nil)

	// 45 vendidas -> 1.5/día; 5 en stock -> 3.33 días -> round = 3.
	abajo := conVentas(t, producto("p1", domain.TypeOther, true), registro("p1", testBodegaA, 5), 45)
	out, _ := alerts.RankAlerts(alerts.ApplyThresholds(abajo, effective), nil, nil, 100)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].DaysUntilStockout)
	assert.Equal(t, int64(3), *out[0].DaysUntilStockout)

	// 45 vendidas -> 1.5/día; 7 en stock -> 4.67 días -> round = 5.
	arriba := conVentas(t, producto("p2", domain.TypeOther, true), registro("p2", testBodegaA, 7), 45)
	out, _ = alerts.RankAlerts(alerts.ApplyThresholds(arriba, effective), nil, nil, 100)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].DaysUntilStockout)
	assert.Equal(t, int64(5), *out[0].DaysUntilStockout)
}

func rankReady(t *testing.T, id, productType string, stock, sold int64) alerts.Candidate {
	t.Helper()
	candidates := conVentas(t, producto(id, productType, true), registro(id, testBodegaA, stock), sold)
	candidates = alerts.ApplyThresholds(candidates, domain.EffectiveThresholds(nil))
	require.Len(t, candidates, 1)
	return candidates[0]
}

func TestRankAlerts_OrdenPorPrioridad(t *testing.T) {
	candidates := []alerts.Candidate{
		rankReady(t, "p-alto", domain.TypeOther, 8, 10),  // priority 0.8
		rankReady(t, "p-bajo", domain.TypeOther, 2, 10),  // priority 0.2
		rankReady(t, "p-medio", domain.TypeOther, 5, 10), // priority 0.5
	}

	out, total := alerts.RankAlerts(candidates, nil, nil, 100)

	require.Len(t, out, 3)
	assert.Equal(t, 3, total)
	assert.Equal(t, "p-bajo", out[0].ProductID)
	assert.Equal(t, "p-medio", out[1].ProductID)
	assert.Equal(t, "p-alto", out[2].ProductID)
}

func TestRankAlerts_LimiteYTotalPreTruncado(t *testing.T) {
	candidates := []alerts.Candidate{
		rankReady(t, "p1", domain.TypeOther, 1, 10),
		rankReady(t, "p2", domain.TypeOther, 2, 10),
		rankReady(t, "p3", domain.TypeOther, 3, 10),
	}

	out, total := alerts.RankAlerts(candidates, nil, nil, 2)

	assert.Len(t, out, 2)
	assert.Equal(t, 3, total, "el total refleja las alertas antes del truncado")
	assert.Equal(t, "p1", out[0].ProductID)
}

func TestRankAlerts_ProveedorDesconocido(t *testing.T) {
	supplierID := "prov-1"
	conProveedor := producto("p1", domain.TypeOther, true)
	conProveedor.SupplierID = &supplierID
	sinProveedor := producto("p2", domain.TypeOther, true)

	var candidates []alerts.Candidate
	for _, p := range []*entity.Product{conProveedor, sinProveedor} {
		cs := conVentas(t, p, registro(p.ID, testBodegaA, 5), 10)
		candidates = append(candidates, alerts.ApplyThresholds(cs, domain.EffectiveThresholds(nil))...)
	}

	suppliers := map[string]*entity.Supplier{
		"prov-1": {ID: "prov-1", Name: "Distribuidora Norte", Email: "ventas@norte.co"},
	}
	warehouses := map[string]*entity.Warehouse{
		testBodegaA: {ID: testBodegaA, Name: "Bodega Central"},
	}

	out, _ := alerts.RankAlerts(candidates, warehouses, suppliers, 100)
	require.Len(t, out, 2)

	porProducto := map[string]int{out[0].ProductID: 0, out[1].ProductID: 1}

	con := out[porProducto["p1"]]
	require.NotNil(t, con.Supplier.ID)
	assert.Equal(t, "Distribuidora Norte", con.Supplier.Name)
	require.NotNil(t, con.Supplier.ContactEmail)
	assert.Equal(t, "ventas@norte.co", *con.Supplier.ContactEmail)
	assert.Equal(t, "Bodega Central", con.WarehouseName)

	sin := out[porProducto["p2"]]
	assert.Nil(t, sin.Supplier.ID)
	assert.Equal(t, alerts.UnknownSupplierName, sin.Supplier.Name)
	assert.Nil(t, sin.Supplier.ContactEmail)
}

func TestRankAlerts_EmpateNilDiasAlFinal(t *testing.T) {
	// Mismo priority (5/10); uno con ventas (días calculables) y el otro con
	// TotalSold cero forzado para simular velocidad nula.
	conDias := rankReady(t, "p1", domain.TypeOther, 5, 10)
	sinDias := rankReady(t, "p2", domain.TypeOther, 5, 10)
	sinDias.TotalSold = decimal.Zero

	out, _ := alerts.RankAlerts([]alerts.Candidate{sinDias, conDias}, nil, nil, 100)

	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ProductID, "días calculados antes que nil en el empate")
	assert.Nil(t, out[1].DaysUntilStockout)
}
