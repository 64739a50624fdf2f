package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vansh2812/Tailor/internal/domain/entity"
	"github.com/Vansh2812/Tailor/internal/domain/repository"
)

var _ repository.RepairWorkRepository = (*RepairWorkRepo)(nil)

// RepairWorkRepo implementación del puerto RepairWorkRepository sobre PostgreSQL.
type RepairWorkRepo struct {
	pool *pgxpool.Pool
}

// NewRepairWorkRepository construye el adaptador de persistencia para el catálogo.
func NewRepairWorkRepository(pool *pgxpool.Pool) *RepairWorkRepo {
	return &RepairWorkRepo{pool: pool}
}

// Create persiste un nuevo servicio de reparación.
func (r *RepairWorkRepo) Create(work *entity.RepairWork) error {
	query := `
		INSERT INTO repair_works (id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		work.ID, work.Name, work.Price, work.CreatedAt, work.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert repair work: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID. Devuelve (nil, nil) si no existe.
func (r *RepairWorkRepo) GetByID(id string) (*entity.RepairWork, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM repair_works WHERE id = $1`
	var w entity.RepairWork
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Name, &w.Price, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair work by id: %w", err)
	}
	return &w, nil
}

// List lista el catálogo completo por fecha de creación.
func (r *RepairWorkRepo) List() ([]*entity.RepairWork, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM repair_works ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list repair works: %w", err)
	}
	defer rows.Close()
	var list []*entity.RepairWork
	for rows.Next() {
		var w entity.RepairWork
		if err := rows.Scan(&w.ID, &w.Name, &w.Price, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan repair work: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza un servicio.
func (r *RepairWorkRepo) Update(work *entity.RepairWork) error {
	query := `
		UPDATE repair_works SET name = $2, price = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		work.ID, work.Name, work.Price, work.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update repair work: %w", err)
	}
	return nil
}

// Delete elimina un servicio por ID. Las líneas de órdenes históricas no se
// tocan: son snapshots sin FK al catálogo.
func (r *RepairWorkRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM repair_works WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete repair work: %w", err)
	}
	return nil
}
