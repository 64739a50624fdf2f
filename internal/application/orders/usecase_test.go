package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/application/orders"
	"github.com/Vansh2812/Tailor/internal/domain"
	"github.com/Vansh2812/Tailor/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func (r *fakeStoreRepo) Create(s *entity.Store) error { r.stores[s.ID] = s; return nil }
func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *fakeStoreRepo) List() ([]*entity.Store, error) { return nil, nil }
func (r *fakeStoreRepo) Update(s *entity.Store) error   { return nil }
func (r *fakeStoreRepo) Delete(id string) error         { return nil }

type fakeOrderRepo struct {
	orders []*entity.WorkOrder
}

func (r *fakeOrderRepo) Create(o *entity.WorkOrder) error { r.orders = append(r.orders, o); return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}
func (r *fakeOrderRepo) List() ([]*entity.WorkOrder, error) { return r.orders, nil }
func (r *fakeOrderRepo) ListByStoreAndRange(_ context.Context, storeID string, from, to time.Time) ([]*entity.WorkOrder, error) {
	return nil, nil
}

func buildUC() (*orders.WorkOrderUseCase, *fakeOrderRepo) {
	storeRepo := &fakeStoreRepo{stores: map[string]*entity.Store{
		"store-1": {ID: "store-1", Name: "Taller Central"},
	}}
	orderRepo := &fakeOrderRepo{}
	return orders.NewWorkOrderUseCase(orderRepo, storeRepo), orderRepo
}

func validRequest() dto.CreateWorkOrderRequest {
	return dto.CreateWorkOrderRequest{
		CustomerName: "Ravi Patel",
		ClothesName:  "Pantalón",
		StoreID:      "store-1",
		Items: []dto.WorkOrderItemRequest{
			{RepairWorkID: "rw-1", Name: "Dobladillo", Price: decimal.NewFromInt(150)},
			{RepairWorkID: "rw-2", Name: "Cambio de cierre", Price: decimal.NewFromInt(200)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_TotalCalculadoEnServidor(t *testing.T) {
	uc, repo := buildUC()

	out, err := uc.Create(validRequest())
	require.NoError(t, err)

	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(350)),
		"el total debe ser la suma de las líneas")
	assert.Equal(t, "Taller Central", out.StoreName, "StoreName se resuelve desde StoreID")
	assert.NotEmpty(t, out.ID)
	require.Len(t, out.Items, 2)
	assert.NotEmpty(t, out.Items[0].ID)
	require.Len(t, repo.orders, 1)
}

func TestCreate_TotalDeclaradoCoincidente(t *testing.T) {
	uc, _ := buildUC()
	in := validRequest()
	in.TotalAmount = decimal.NewFromInt(350)

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(350)))
}

// Un total declarado que no coincide con la suma de líneas se rechaza en vez
// de confiar en el valor del cliente.
func TestCreate_TotalInconsistente_Rechazado(t *testing.T) {
	uc, repo := buildUC()
	in := validRequest()
	in.TotalAmount = decimal.NewFromInt(999)

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrTotalMismatch)
	assert.Empty(t, repo.orders, "no debe persistirse nada")
}

func TestCreate_CamposObligatorios(t *testing.T) {
	uc, _ := buildUC()

	in := validRequest()
	in.CustomerName = "  "
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequest()
	in.Items = nil
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequest()
	in.Items[0].Price = decimal.NewFromInt(-5)
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_SucursalInexistente(t *testing.T) {
	uc, _ := buildUC()
	in := validRequest()
	in.StoreID = "no-existe"

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_FechaPorDefecto(t *testing.T) {
	uc, _ := buildUC()

	before := time.Now()
	out, err := uc.Create(validRequest())
	require.NoError(t, err)
	assert.False(t, out.Date.Before(before), "sin fecha explícita se usa el momento actual")

	when := time.Date(2024, 10, 24, 0, 0, 0, 0, time.Local)
	in := validRequest()
	in.Date = &when
	out, err = uc.Create(in)
	require.NoError(t, err)
	assert.True(t, out.Date.Equal(when))
}

// Las líneas capturan nombre y precio al momento de crear la orden; cambios
// posteriores del catálogo no deben reflejarse en órdenes existentes.
func TestCreate_SnapshotInmutable(t *testing.T) {
	uc, repo := buildUC()

	out, err := uc.Create(validRequest())
	require.NoError(t, err)

	stored := repo.orders[0]
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Dobladillo", stored.Items[0].Name)
	assert.True(t, stored.Items[0].Price.Equal(decimal.NewFromInt(150)))

	// Relectura: los valores siguen siendo los del snapshot.
	again, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Items[0].Name, again.Items[0].Name)
	assert.True(t, out.Items[0].Price.Equal(again.Items[0].Price))
	assert.True(t, out.TotalAmount.Equal(again.TotalAmount))
}

// Las líneas son una lista ordenada: la relectura debe devolverlas en el
// mismo orden en que se enviaron, sin importar cómo queden sus UUIDs.
func TestCreate_OrdenDeLineasPreservado(t *testing.T) {
	uc, _ := buildUC()

	names := []string{"Dobladillo", "Cambio de cierre", "Ajuste de cintura", "Botones", "Forro nuevo", "Planchado"}
	in := validRequest()
	in.Items = nil
	for i, n := range names {
		in.Items = append(in.Items, dto.WorkOrderItemRequest{
			RepairWorkID: "rw-" + n,
			Name:         n,
			Price:        decimal.NewFromInt(int64(10 * (i + 1))),
		})
	}

	created, err := uc.Create(in)
	require.NoError(t, err)
	require.Len(t, created.Items, len(names))
	for i, it := range created.Items {
		assert.Equal(t, names[i], it.Name)
	}

	reread, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, reread.Items, len(names))
	for i, it := range reread.Items {
		assert.Equal(t, names[i], it.Name, "la línea %d debe conservar su posición de envío", i)
		assert.True(t, it.Price.Equal(decimal.NewFromInt(int64(10*(i+1)))))
	}
}

// Un storeName enviado por el cliente se ignora: siempre gana el resuelto
// desde StoreID.
func TestCreate_StoreNameDelClienteIgnorado(t *testing.T) {
	uc, repo := buildUC()

	in := validRequest()
	in.StoreName = "Nombre Falsificado"
	out, err := uc.Create(in)
	require.NoError(t, err)

	assert.Equal(t, "Taller Central", out.StoreName)
	assert.Equal(t, "Taller Central", repo.orders[0].StoreName)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente(t *testing.T) {
	uc, _ := buildUC()
	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestList_OrdenNatural(t *testing.T) {
	uc, _ := buildUC()

	first, err := uc.Create(validRequest())
	require.NoError(t, err)
	second, err := uc.Create(validRequest())
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}
