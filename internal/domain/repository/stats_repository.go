package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Vansh2812/Tailor/internal/domain/entity"
)

// StatsRepository consultas read-only para el dashboard. Se recalculan con un
// full scan en cada llamada; aceptable solo porque los volúmenes son pequeños.
type StatsRepository interface {
	// GetOrderTotals devuelve el número de órdenes y la suma de TotalAmount
	// sobre todo el libro.
	GetOrderTotals(ctx context.Context) (count int64, revenue decimal.Decimal, err error)
	CountStores(ctx context.Context) (int64, error)
	CountRepairWorks(ctx context.Context) (int64, error)
	// RecentOrders devuelve las n órdenes más recientes por Date descendente.
	RecentOrders(ctx context.Context, n int) ([]*entity.WorkOrder, error)
}
