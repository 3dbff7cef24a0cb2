// Package excel exportación de alertas a hojas de cálculo.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-alerts/internal/application/dto"
)

const alertSheetName = "Alertas"

var alertColumns = []string{
	"SKU", "Producto", "Tipo", "Bodega", "Stock actual", "Umbral",
	"Vendido (30 días)", "Ventas", "Días hasta agotarse", "Proveedor", "Prioridad",
}

// AlertExporter genera un libro xlsx a partir del resultado de alertas.
type AlertExporter struct{}

func NewAlertExporter() *AlertExporter {
	return &AlertExporter{}
}

// Export escribe las alertas en una hoja con encabezado estilizado y devuelve
// el archivo serializado.
func (e *AlertExporter) Export(result *dto.LowStockResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", alertSheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C65911"}, Pattern: 1},
	})

	for i, name := range alertColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(alertSheetName, cell, name)
		f.SetCellStyle(alertSheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(alertSheetName, colName, colName, 18)
	}

	for rowIdx, alert := range result.Alerts {
		days := ""
		if alert.DaysUntilStockout != nil {
			days = fmt.Sprintf("%d", *alert.DaysUntilStockout)
		}
		values := []any{
			alert.SKU,
			alert.ProductName,
			alert.ProductType,
			alert.WarehouseName,
			alert.CurrentStock.String(),
			alert.Threshold,
			alert.TotalSoldLast30Days.String(),
			alert.SalesCount,
			days,
			alert.Supplier.Name,
			alert.SortPriority.StringFixed(4),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(alertSheetName, cell, value)
		}
	}

	sheetIdx, _ := f.GetSheetIndex(alertSheetName)
	f.SetActiveSheet(sheetIdx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("exportar alertas a xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
