package repository

import (
	"context"
	"time"

	"github.com/Vansh2812/Tailor/internal/domain/entity"
)

// WorkOrderRepository define el puerto de persistencia para el libro de
// órdenes. El libro es append-mostly: las órdenes se crean una vez y después
// solo se leen.
type WorkOrderRepository interface {
	// Create persiste la cabecera y sus líneas en una sola transacción.
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	// List devuelve el libro completo en su orden natural (created_at).
	List() ([]*entity.WorkOrder, error)
	// ListByStoreAndRange filtra por sucursal y por Date en [from, to]
	// inclusive, preservando el orden natural del libro.
	ListByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]*entity.WorkOrder, error)
}
