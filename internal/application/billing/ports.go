package billing

import (
	"context"

	"github.com/Vansh2812/Tailor/internal/application/dto"
)

// BillPDFGenerator puerto para la representación PDF del reporte de
// facturación (implementado en infrastructure/pdf).
type BillPDFGenerator interface {
	GenerateBillPDF(ctx context.Context, bill *dto.BillSummary) ([]byte, error)
}

// BillExcelGenerator puerto para el libro Excel del reporte de facturación
// (implementado en infrastructure/excel).
type BillExcelGenerator interface {
	GenerateBillWorkbook(ctx context.Context, bill *dto.BillSummary) ([]byte, error)
}
