package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Vansh2812/Tailor/internal/domain/entity"
	"github.com/Vansh2812/Tailor/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas read-only del dashboard sobre PostgreSQL.
type StatsRepo struct {
	pool   *pgxpool.Pool
	orders *WorkOrderRepo
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool, orders: NewWorkOrderRepository(pool)}
}

// GetOrderTotals devuelve el número de órdenes y la suma de total_amount.
func (r *StatsRepo) GetOrderTotals(ctx context.Context) (int64, decimal.Decimal, error) {
	var count int64
	var revenue decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM work_orders`).Scan(&count, &revenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("order totals: %w", err)
	}
	return count, revenue, nil
}

// CountStores cuenta las sucursales registradas.
func (r *StatsRepo) CountStores(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}

// CountRepairWorks cuenta los servicios del catálogo.
func (r *StatsRepo) CountRepairWorks(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM repair_works`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count repair works: %w", err)
	}
	return n, nil
}

// RecentOrders devuelve las n órdenes más recientes por date descendente,
// con sus líneas cargadas.
func (r *StatsRepo) RecentOrders(ctx context.Context, n int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders ORDER BY date DESC LIMIT $1`
	return r.orders.queryOrders(ctx, query, n)
}
