package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vansh2812/Tailor/internal/domain/entity"
	"github.com/Vansh2812/Tailor/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

const workOrderColumns = `id, customer_name, clothes_name, store_id, store_name, total_amount, date, created_at, updated_at`

// WorkOrderRepo implementación del puerto WorkOrderRepository sobre PostgreSQL.
type WorkOrderRepo struct {
	pool *pgxpool.Pool
}

// NewWorkOrderRepository construye el adaptador de persistencia para órdenes.
func NewWorkOrderRepository(pool *pgxpool.Pool) *WorkOrderRepo {
	return &WorkOrderRepo{pool: pool}
}

// Create persiste la cabecera y las líneas en una sola transacción.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO work_orders (id, customer_name, clothes_name, store_id, store_name, total_amount, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID, order.CustomerName, order.ClothesName, order.StoreID, order.StoreName,
		order.TotalAmount, order.Date, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work order: %w", err)
	}

	for i, it := range order.Items {
		// position fija el orden de envío: los ids son UUID aleatorios y no
		// sirven como clave de ordenamiento.
		_, err = tx.Exec(ctx, `
			INSERT INTO work_order_items (id, work_order_id, repair_work_id, name, price, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, it.WorkOrderID, it.RepairWorkID, it.Name, it.Price, i,
		)
		if err != nil {
			return fmt.Errorf("insert work order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID obtiene una orden con sus líneas. Devuelve (nil, nil) si no existe.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	ctx := context.Background()
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	var o entity.WorkOrder
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomerName, &o.ClothesName, &o.StoreID, &o.StoreName,
		&o.TotalAmount, &o.Date, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order by id: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.WorkOrder{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// List devuelve el libro completo en su orden natural (created_at).
func (r *WorkOrderRepo) List() ([]*entity.WorkOrder, error) {
	ctx := context.Background()
	query := `SELECT ` + workOrderColumns + ` FROM work_orders ORDER BY created_at`
	return r.queryOrders(ctx, query)
}

// ListByStoreAndRange filtra por sucursal y por date en [from, to] inclusive,
// conservando el orden natural del libro.
func (r *WorkOrderRepo) ListByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + `
		FROM work_orders
		WHERE store_id = $1 AND date >= $2 AND date <= $3
		ORDER BY created_at`
	return r.queryOrders(ctx, query, storeID, from, to)
}

func (r *WorkOrderRepo) queryOrders(ctx context.Context, query string, args ...any) ([]*entity.WorkOrder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		var o entity.WorkOrder
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.ClothesName, &o.StoreID, &o.StoreName,
			&o.TotalAmount, &o.Date, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadItems carga las líneas de un lote de órdenes en una sola consulta,
// en su orden de envío (position).
func (r *WorkOrderRepo) loadItems(ctx context.Context, orders []*entity.WorkOrder) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	byID := make(map[string]*entity.WorkOrder, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, work_order_id, repair_work_id, name, price
		FROM work_order_items WHERE work_order_id = ANY($1)
		ORDER BY work_order_id, position`, ids)
	if err != nil {
		return fmt.Errorf("load work order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.WorkOrderItem
		if err := rows.Scan(&it.ID, &it.WorkOrderID, &it.RepairWorkID, &it.Name, &it.Price); err != nil {
			return fmt.Errorf("scan work order item: %w", err)
		}
		if o, ok := byID[it.WorkOrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}
