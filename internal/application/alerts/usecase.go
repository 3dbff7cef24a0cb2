package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts/internal/application/dto"
	"github.com/jhoicas/stock-alerts/internal/domain"
	"github.com/jhoicas/stock-alerts/internal/domain/entity"
	"github.com/jhoicas/stock-alerts/internal/domain/repository"
)

// DefaultLimit límite de alertas devueltas cuando el caller no indica uno.
const DefaultLimit = 100

// ComputeInput parámetros de una invocación del cómputo de alertas.
type ComputeInput struct {
	CompanyID   string
	WarehouseID string // opcional
	ProductType string // opcional
	Limit       int    // <= 0 usa DefaultLimit
}

// LowStockUseCase orquesta el pipeline de alertas de stock bajo. Es read-only
// y sin estado compartido: cualquier número de cómputos puede ejecutarse en
// paralelo para distintas empresas.
type LowStockUseCase struct {
	companyRepo   repository.CompanyRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	salesRepo     repository.SalesRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
	thresholdRepo repository.ThresholdRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	salesRepo repository.SalesRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
	thresholdRepo repository.ThresholdRepository,
) *LowStockUseCase {
	return &LowStockUseCase{
		companyRepo:   companyRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		salesRepo:     salesRepo,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		thresholdRepo: thresholdRepo,
	}
}

// Compute ejecuta el pipeline completo para una empresa. Toma un snapshot de
// lectura de las cuatro fuentes al inicio y no las vuelve a consultar a mitad
// del cómputo. Si cualquier etapa falla, falla el cómputo entero: nunca se
// devuelven resultados parciales como éxito.
func (uc *LowStockUseCase) Compute(ctx context.Context, in ComputeInput) (*dto.LowStockResponse, error) {
	if _, err := uuid.Parse(in.CompanyID); err != nil {
		return nil, fmt.Errorf("company_id: %w", domain.ErrInvalidIdentifier)
	}
	if in.WarehouseID != "" {
		if _, err := uuid.Parse(in.WarehouseID); err != nil {
			return nil, fmt.Errorf("warehouse_id: %w", domain.ErrInvalidIdentifier)
		}
	}
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, dataAccessErr("empresa", err)
	}
	if company == nil {
		return nil, fmt.Errorf("empresa %s: %w", in.CompanyID, domain.ErrNotFound)
	}

	now := time.Now()
	since := now.AddDate(0, 0, -WindowDays)

	// Snapshot de lectura: las cuatro consultas son independientes y se
	// lanzan en paralelo.
	type productsResult struct {
		rows []*entity.Product
		err  error
	}
	type recordsResult struct {
		rows []*entity.InventoryRecord
		err  error
	}
	type salesResult struct {
		rows []*entity.SaleEvent
		err  error
	}
	type overridesResult struct {
		overrides map[string]int
		err       error
	}

	prodCh := make(chan productsResult, 1)
	recCh := make(chan recordsResult, 1)
	saleCh := make(chan salesResult, 1)
	ovrCh := make(chan overridesResult, 1)

	go func() {
		rows, err := uc.productRepo.ListAllByCompany(ctx, in.CompanyID)
		prodCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.inventoryRepo.ListByCompany(ctx, in.CompanyID, in.WarehouseID)
		recCh <- recordsResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.ListSince(ctx, in.CompanyID, since, in.WarehouseID)
		saleCh <- salesResult{rows, err}
	}()
	go func() {
		overrides, err := uc.thresholdRepo.GetOverrides(ctx, in.CompanyID)
		ovrCh <- overridesResult{overrides, err}
	}()

	prod := <-prodCh
	rec := <-recCh
	sale := <-saleCh
	ovr := <-ovrCh

	if prod.err != nil {
		return nil, dataAccessErr("productos", prod.err)
	}
	if rec.err != nil {
		return nil, dataAccessErr("inventario", rec.err)
	}
	if sale.err != nil {
		return nil, dataAccessErr("ventas", sale.err)
	}
	if ovr.err != nil {
		return nil, dataAccessErr("umbrales", ovr.err)
	}

	// Etapas secuenciales del pipeline.
	candidates := BuildCandidates(prod.rows, rec.rows, in.WarehouseID, in.ProductType)
	candidates = FilterByActivity(candidates, sale.rows)
	candidates = ApplyThresholds(candidates, domain.EffectiveThresholds(ovr.overrides))

	warehouses, suppliers, err := uc.fetchEnrichment(ctx, candidates)
	if err != nil {
		return nil, err
	}

	ranked, total := RankAlerts(candidates, warehouses, suppliers, limit)

	filters := dto.AlertFiltersDTO{Limit: limit}
	if in.WarehouseID != "" {
		filters.WarehouseID = &in.WarehouseID
	}
	if in.ProductType != "" {
		filters.ProductType = &in.ProductType
	}

	return &dto.LowStockResponse{
		Alerts:      ranked,
		TotalAlerts: total,
		Filters:     filters,
		GeneratedAt: now,
	}, nil
}

// fetchEnrichment trae bodegas y proveedores referenciados por los candidatos
// que llegaron al ranking. Dos consultas independientes, en paralelo.
func (uc *LowStockUseCase) fetchEnrichment(
	ctx context.Context,
	candidates []Candidate,
) (map[string]*entity.Warehouse, map[string]*entity.Supplier, error) {
	warehouseIDs := make([]string, 0, len(candidates))
	supplierIDs := make([]string, 0, len(candidates))
	seenWh := make(map[string]bool, len(candidates))
	seenSup := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if id := c.Record.WarehouseID; !seenWh[id] {
			seenWh[id] = true
			warehouseIDs = append(warehouseIDs, id)
		}
		if c.Product.SupplierID != nil {
			if id := *c.Product.SupplierID; !seenSup[id] {
				seenSup[id] = true
				supplierIDs = append(supplierIDs, id)
			}
		}
	}

	type whResult struct {
		rows []*entity.Warehouse
		err  error
	}
	type supResult struct {
		rows []*entity.Supplier
		err  error
	}
	whCh := make(chan whResult, 1)
	supCh := make(chan supResult, 1)

	go func() {
		rows, err := uc.warehouseRepo.ListByIDs(ctx, warehouseIDs)
		whCh <- whResult{rows, err}
	}()
	go func() {
		rows, err := uc.supplierRepo.ListByIDs(ctx, supplierIDs)
		supCh <- supResult{rows, err}
	}()

	wh := <-whCh
	sup := <-supCh

	if wh.err != nil {
		return nil, nil, dataAccessErr("bodegas", wh.err)
	}
	if sup.err != nil {
		return nil, nil, dataAccessErr("proveedores", sup.err)
	}

	warehouses := make(map[string]*entity.Warehouse, len(wh.rows))
	for _, w := range wh.rows {
		warehouses[w.ID] = w
	}
	suppliers := make(map[string]*entity.Supplier, len(sup.rows))
	for _, s := range sup.rows {
		suppliers[s.ID] = s
	}
	return warehouses, suppliers, nil
}

// dataAccessErr marca una falla del colaborador de datos. El detalle queda en
// el mensaje para logs; el handler responde genérico sin filtrarlo al caller.
func dataAccessErr(source string, err error) error {
	return fmt.Errorf("alertas: consulta de %s: %w: %v", source, domain.ErrDataAccess, err)
}
