package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderItemRequest línea seleccionada por la UI (snapshot del catálogo).
type WorkOrderItemRequest struct {
	RepairWorkID string          `json:"repairWorkId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
}

// CreateWorkOrderRequest body para POST /api/workOrders.
//
// TotalAmount es opcional: si viene, debe coincidir con la suma de las líneas
// (se verifica en el servidor); si viene en cero se calcula. StoreName se
// resuelve siempre en el servidor a partir de StoreID.
type CreateWorkOrderRequest struct {
	CustomerName string `json:"customerName"`
	ClothesName  string `json:"clothesName"`
	StoreID      string `json:"storeId"`
	// StoreName se acepta por compatibilidad con la UI pero se ignora: el
	// servidor siempre lo resuelve desde StoreID.
	StoreName   string                 `json:"storeName"`
	Items       []WorkOrderItemRequest `json:"repairWorks"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	Date        *time.Time             `json:"date"`
}

// WorkOrderItemResponse línea en respuestas.
type WorkOrderItemResponse struct {
	ID           string          `json:"id"`
	RepairWorkID string          `json:"repairWorkId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
}

// WorkOrderResponse orden de trabajo en respuestas.
type WorkOrderResponse struct {
	ID           string                  `json:"id"`
	CustomerName string                  `json:"customerName"`
	ClothesName  string                  `json:"clothesName,omitempty"`
	StoreID      string                  `json:"storeId"`
	StoreName    string                  `json:"storeName"`
	Items        []WorkOrderItemResponse `json:"repairWorks"`
	TotalAmount  decimal.Decimal         `json:"totalAmount"`
	Date         time.Time               `json:"date"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}
