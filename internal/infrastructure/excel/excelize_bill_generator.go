// Package excel implementa la exportación del reporte de facturación a un
// libro .xlsx: una fila por orden más una fila final de totales.
package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	appbilling "github.com/Vansh2812/Tailor/internal/application/billing"
	"github.com/Vansh2812/Tailor/internal/application/dto"
)

const sheetName = "Bill Report"

var _ appbilling.BillExcelGenerator = (*ExcelizeBillGenerator)(nil)

// ExcelizeBillGenerator implementa billing.BillExcelGenerator usando excelize.
type ExcelizeBillGenerator struct{}

// NewExcelizeBillGenerator construye el generador.
func NewExcelizeBillGenerator() *ExcelizeBillGenerator { return &ExcelizeBillGenerator{} }

// GenerateBillWorkbook genera el libro y devuelve sus bytes.
func (g *ExcelizeBillGenerator) GenerateBillWorkbook(_ context.Context, bill *dto.BillSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	// Cabecera del reporte
	set := func(cell string, value interface{}) {
		// SetCellValue solo falla con coordenadas inválidas; aquí son fijas.
		_ = f.SetCellValue(sheetName, cell, value)
	}
	set("A1", "Tailor Management - Bill Report")
	set("A2", "Store: "+bill.StoreName)
	set("A3", "Period: "+bill.DateRange)

	// Tabla de órdenes
	headers := []string{"Date", "Customer", "Clothes", "Services", "Amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 5)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de cabecera: %w", err)
		}
		set(cell, h)
	}

	rowN := 6
	for _, o := range bill.Orders {
		names := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			names = append(names, it.Name)
		}
		amount, _ := o.TotalAmount.Float64()
		set(fmt.Sprintf("A%d", rowN), o.Date.Format("2006-01-02"))
		set(fmt.Sprintf("B%d", rowN), o.CustomerName)
		set(fmt.Sprintf("C%d", rowN), o.ClothesName)
		set(fmt.Sprintf("D%d", rowN), strings.Join(names, ", "))
		set(fmt.Sprintf("E%d", rowN), amount)
		rowN++
	}

	// Fila de totales
	total, _ := bill.TotalAmount.Float64()
	set(fmt.Sprintf("A%d", rowN), fmt.Sprintf("TOTAL (%d orders)", bill.TotalOrders))
	set(fmt.Sprintf("E%d", rowN), total)

	if err := f.SetColWidth(sheetName, "A", "E", 22); err != nil {
		return nil, fmt.Errorf("excel: ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
