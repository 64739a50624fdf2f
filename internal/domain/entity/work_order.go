package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrder representa una orden de trabajo de un cliente.
//
// StoreName y las líneas (WorkOrderItem) son copias tomadas al momento de la
// creación: cambios posteriores en la sucursal o en el catálogo nunca alteran
// una orden histórica. Invariante: TotalAmount == suma de Items[].Price.
type WorkOrder struct {
	ID           string
	CustomerName string
	ClothesName  string // etiqueta descriptiva de la prenda (opcional)
	StoreID      string
	StoreName    string // copia desnormalizada al crear
	Items        []WorkOrderItem
	TotalAmount  decimal.Decimal
	Date         time.Time // fecha de la orden; por defecto la de creación
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkOrderItem línea de una orden: snapshot inmutable de un servicio del
// catálogo (no una referencia viva).
type WorkOrderItem struct {
	ID           string
	WorkOrderID  string
	RepairWorkID string
	Name         string
	Price        decimal.Decimal
}
