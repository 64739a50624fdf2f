// Package analytics contiene el agregador del dashboard: conteos y sumas
// globales sobre los tres registros.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/application/orders"
	"github.com/Vansh2812/Tailor/internal/domain/entity"
	"github.com/Vansh2812/Tailor/internal/domain/repository"
)

const dashboardRecentOrders = 5 // órdenes recientes en el widget del dashboard

// DashboardUseCase calcula el resumen global de la vista principal.
//
// Fuente de datos: StatsRepository (consultas read-only sin caché; full scan
// en cada llamada, aceptable por el volumen pequeño de datos).
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStats.
//
// Cuatro llamadas en paralelo:
//  1. GetOrderTotals      → TotalOrders + TotalRevenue
//  2. CountStores         → TotalStores
//  3. CountRepairWorks    → TotalRepairWorks
//  4. RecentOrders(5)     → RecentOrders por fecha descendente
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	type totalsResult struct {
		count   int64
		revenue decimal.Decimal
		err     error
	}
	type countResult struct {
		n   int64
		err error
	}
	type recentResult struct {
		list []*entity.WorkOrder
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	storesCh := make(chan countResult, 1)
	worksCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		count, revenue, err := uc.statsRepo.GetOrderTotals(ctx)
		totalsCh <- totalsResult{count, revenue, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountStores(ctx)
		storesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountRepairWorks(ctx)
		worksCh <- countResult{n, err}
	}()
	go func() {
		list, err := uc.statsRepo.RecentOrders(ctx, dashboardRecentOrders)
		recentCh <- recentResult{list, err}
	}()

	totals := <-totalsCh
	stores := <-storesCh
	works := <-worksCh
	recent := <-recentCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de órdenes: %w", totals.err)
	}
	if stores.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de sucursales: %w", stores.err)
	}
	if works.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de servicios: %w", works.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes recientes: %w", recent.err)
	}

	recentList := make([]dto.WorkOrderResponse, 0, len(recent.list))
	for _, o := range recent.list {
		recentList = append(recentList, *orders.ToResponse(o))
	}

	return &dto.DashboardStats{
		TotalOrders:      totals.count,
		TotalRevenue:     totals.revenue,
		TotalStores:      stores.n,
		TotalRepairWorks: works.n,
		RecentOrders:     recentList,
	}, nil
}
