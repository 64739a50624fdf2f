// Package billing contiene el agregador de facturación: filtra el libro de
// órdenes por sucursal y rango de fechas y produce un resumen exportable.
package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/application/orders"
	"github.com/Vansh2812/Tailor/internal/domain"
	"github.com/Vansh2812/Tailor/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// BillingUseCase genera el resumen de facturación de una sucursal.
type BillingUseCase struct {
	orderRepo repository.WorkOrderRepository
	storeRepo repository.StoreRepository
	pdfGen    BillPDFGenerator
	excelGen  BillExcelGenerator
}

// NewBillingUseCase construye el caso de uso.
func NewBillingUseCase(
	orderRepo repository.WorkOrderRepository,
	storeRepo repository.StoreRepository,
	pdfGen BillPDFGenerator,
	excelGen BillExcelGenerator,
) *BillingUseCase {
	return &BillingUseCase{orderRepo: orderRepo, storeRepo: storeRepo, pdfGen: pdfGen, excelGen: excelGen}
}

// GenerateBill filtra las órdenes de la sucursal cuyo Date cae en
// [startDate, último instante de endDate] y suma sus totales.
//
// Las órdenes se devuelven sin modificar y en el orden natural del libro; el
// agregador no impone ningún re-ordenamiento. Si la sucursal no existe no hay
// resultado: devuelve (nil, nil), no un error.
func (uc *BillingUseCase) GenerateBill(ctx context.Context, in dto.BillRequest) (*dto.BillSummary, error) {
	if in.StoreID == "" || in.StartDate == "" || in.EndDate == "" {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.ParseInLocation(dateLayout, in.StartDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate", domain.ErrInvalidInput)
	}
	end, err := time.ParseInLocation(dateLayout, in.EndDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate", domain.ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate anterior a startDate", domain.ErrInvalidInput)
	}
	// Rango inclusivo: el día final se extiende hasta 23:59:59.999...
	end = end.Add(24*time.Hour - time.Nanosecond)

	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, fmt.Errorf("billing: obtener sucursal: %w", err)
	}
	if store == nil {
		return nil, nil
	}

	matched, err := uc.orderRepo.ListByStoreAndRange(ctx, in.StoreID, start, end)
	if err != nil {
		return nil, fmt.Errorf("billing: filtrar órdenes: %w", err)
	}

	total := decimal.Zero
	list := make([]dto.WorkOrderResponse, 0, len(matched))
	for _, o := range matched {
		total = total.Add(o.TotalAmount)
		list = append(list, *orders.ToResponse(o))
	}

	return &dto.BillSummary{
		StoreName:   store.Name,
		DateRange:   fmt.Sprintf("%s to %s", in.StartDate, in.EndDate),
		TotalOrders: len(matched),
		TotalAmount: total,
		Orders:      list,
	}, nil
}

// DownloadBillPDF genera el resumen y su PDF.
//
// Retorna (nil, "", nil) cuando la sucursal no existe (sin resultado).
func (uc *BillingUseCase) DownloadBillPDF(ctx context.Context, in dto.BillRequest) (pdfBytes []byte, filename string, err error) {
	bill, err := uc.GenerateBill(ctx, in)
	if err != nil {
		return nil, "", err
	}
	if bill == nil {
		return nil, "", nil
	}
	pdfBytes, err = uc.pdfGen.GenerateBillPDF(ctx, bill)
	if err != nil {
		return nil, "", fmt.Errorf("billing: generación PDF fallida: %w", err)
	}
	return pdfBytes, exportFilename(bill, in, "pdf"), nil
}

// DownloadBillExcel genera el resumen y su libro Excel.
func (uc *BillingUseCase) DownloadBillExcel(ctx context.Context, in dto.BillRequest) (xlsxBytes []byte, filename string, err error) {
	bill, err := uc.GenerateBill(ctx, in)
	if err != nil {
		return nil, "", err
	}
	if bill == nil {
		return nil, "", nil
	}
	xlsxBytes, err = uc.excelGen.GenerateBillWorkbook(ctx, bill)
	if err != nil {
		return nil, "", fmt.Errorf("billing: generación Excel fallida: %w", err)
	}
	return xlsxBytes, exportFilename(bill, in, "xlsx"), nil
}

func exportFilename(bill *dto.BillSummary, in dto.BillRequest, ext string) string {
	name := strings.ReplaceAll(strings.ToLower(bill.StoreName), " ", "_")
	return fmt.Sprintf("bill_%s_%s_%s.%s", name, in.StartDate, in.EndDate, ext)
}
