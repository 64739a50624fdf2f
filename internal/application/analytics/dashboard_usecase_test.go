package analytics_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vansh2812/Tailor/internal/application/analytics"
	"github.com/Vansh2812/Tailor/internal/domain/entity"
)

// fakeStatsRepo calcula los agregados en memoria a partir de listas fijas.
type fakeStatsRepo struct {
	orders      []*entity.WorkOrder
	stores      int64
	repairWorks int64
	failTotals  bool
}

func (r *fakeStatsRepo) GetOrderTotals(_ context.Context) (int64, decimal.Decimal, error) {
	if r.failTotals {
		return 0, decimal.Zero, errors.New("db caída")
	}
	total := decimal.Zero
	for _, o := range r.orders {
		total = total.Add(o.TotalAmount)
	}
	return int64(len(r.orders)), total, nil
}

func (r *fakeStatsRepo) CountStores(_ context.Context) (int64, error) { return r.stores, nil }

func (r *fakeStatsRepo) CountRepairWorks(_ context.Context) (int64, error) {
	return r.repairWorks, nil
}

func (r *fakeStatsRepo) RecentOrders(_ context.Context, n int) ([]*entity.WorkOrder, error) {
	sorted := make([]*entity.WorkOrder, len(r.orders))
	copy(sorted, r.orders)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted, nil
}

func dashOrder(id string, day int, amount int64) *entity.WorkOrder {
	return &entity.WorkOrder{
		ID:          id,
		StoreID:     "store-1",
		StoreName:   "Taller Central",
		TotalAmount: decimal.NewFromInt(amount),
		Date:        time.Date(2024, 10, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestGetStats_Agregados(t *testing.T) {
	repo := &fakeStatsRepo{
		orders: []*entity.WorkOrder{
			dashOrder("o1", 20, 100),
			dashOrder("o2", 21, 250),
			dashOrder("o3", 22, 400),
		},
		stores:      2,
		repairWorks: 7,
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalOrders)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, int64(2), out.TotalStores)
	assert.Equal(t, int64(7), out.TotalRepairWorks)
}

// Más de 5 órdenes: el widget recorta a las 5 más recientes, fecha descendente.
func TestGetStats_RecientesLimitadasACinco(t *testing.T) {
	repo := &fakeStatsRepo{}
	for day := 1; day <= 8; day++ {
		repo.orders = append(repo.orders, dashOrder(string(rune('a'+day)), day, 10))
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	require.Len(t, out.RecentOrders, 5)
	for i := 1; i < len(out.RecentOrders); i++ {
		assert.False(t, out.RecentOrders[i].Date.After(out.RecentOrders[i-1].Date),
			"las recientes deben venir en orden descendente por fecha")
	}
	assert.Equal(t, time.Date(2024, 10, 8, 10, 0, 0, 0, time.UTC), out.RecentOrders[0].Date)
}

func TestGetStats_SinDatos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeStatsRepo{})

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, out.TotalOrders)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.Empty(t, out.RecentOrders)
}

func TestGetStats_ErrorDeRepositorio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeStatsRepo{failTotals: true})

	_, err := uc.GetStats(context.Background())
	assert.Error(t, err)
}
