package dto

import "github.com/shopspring/decimal"

// BillRequest parámetros para el reporte de facturación de una sucursal.
// Las fechas van en formato 2006-01-02; el rango es inclusivo y la fecha final
// se extiende hasta el último instante de ese día.
type BillRequest struct {
	StoreID   string `query:"storeId"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// BillSummary resumen de facturación de una sucursal en un rango de fechas.
// Orders conserva las órdenes originales en el orden natural del libro.
type BillSummary struct {
	StoreName   string              `json:"storeName"`
	DateRange   string              `json:"dateRange"`
	TotalOrders int                 `json:"totalOrders"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Orders      []WorkOrderResponse `json:"orders"`
}
