package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts/internal/application/dto"
	"github.com/jhoicas/stock-alerts/internal/domain"
	"github.com/jhoicas/stock-alerts/internal/domain/entity"
	"github.com/jhoicas/stock-alerts/internal/domain/repository"
)

// SalesUseCase registra eventos de venta (log append-only) y permite fijar el
// stock de un (producto, bodega). Es la vía de escritura fina: el cómputo de
// alertas solo lee.
type SalesUseCase struct {
	salesRepo     repository.SalesRepository
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(
	salesRepo repository.SalesRepository,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *SalesUseCase {
	return &SalesUseCase{
		salesRepo:     salesRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// RecordSale registra un evento de venta. Valida que el producto exista y sea
// de la empresa, y que la cantidad sea positiva. No descuenta stock: la
// consistencia del write-path de inventario no es responsabilidad de este
// servicio.
func (uc *SalesUseCase) RecordSale(ctx context.Context, companyID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	soldAt := time.Now()
	if in.SoldAt != nil {
		soldAt = *in.SoldAt
	}
	sale := &entity.SaleEvent{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		SoldAt:      soldAt,
		CreatedAt:   time.Now(),
	}
	if err := uc.salesRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return &dto.SaleResponse{
		ID:          sale.ID,
		CompanyID:   sale.CompanyID,
		ProductID:   sale.ProductID,
		WarehouseID: sale.WarehouseID,
		Quantity:    sale.Quantity,
		SoldAt:      sale.SoldAt,
	}, nil
}

// UpsertInventory fija el stock actual de un (producto, bodega). Hay a lo sumo
// un registro por par; escrituras repetidas lo reemplazan.
func (uc *SalesUseCase) UpsertInventory(ctx context.Context, companyID string, in dto.UpsertInventoryRequest) (*dto.InventoryRecordResponse, error) {
	if in.Quantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	record := &entity.InventoryRecord{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UpdatedAt:   time.Now(),
	}
	if err := uc.inventoryRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return &dto.InventoryRecordResponse{
		ProductID:   record.ProductID,
		WarehouseID: record.WarehouseID,
		Quantity:    record.Quantity,
		UpdatedAt:   record.UpdatedAt,
	}, nil
}
