// Package orders contiene los casos de uso del libro de órdenes de trabajo.
package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/domain"
	"github.com/Vansh2812/Tailor/internal/domain/entity"
	"github.com/Vansh2812/Tailor/internal/domain/repository"
)

// WorkOrderUseCase creación y lectura de órdenes de trabajo.
//
// Las órdenes se crean con un snapshot del catálogo (nombre y precio por
// línea) y del nombre de la sucursal; después son de solo lectura.
type WorkOrderUseCase struct {
	orderRepo repository.WorkOrderRepository
	storeRepo repository.StoreRepository
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(orderRepo repository.WorkOrderRepository, storeRepo repository.StoreRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{orderRepo: orderRepo, storeRepo: storeRepo}
}

// Create valida y persiste una orden de trabajo.
//
// El total se recalcula en el servidor a partir de las líneas; si la UI envía
// un total distinto se rechaza con ErrTotalMismatch en vez de confiar en el
// valor del cliente. StoreName se resuelve siempre desde StoreID.
func (uc *WorkOrderUseCase) Create(in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.StoreID) == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" || it.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	total := decimal.Zero
	for _, it := range in.Items {
		total = total.Add(it.Price)
	}
	if !in.TotalAmount.IsZero() && !in.TotalAmount.Equal(total) {
		return nil, domain.ErrTotalMismatch
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	order := &entity.WorkOrder{
		ID:           uuid.New().String(),
		CustomerName: in.CustomerName,
		ClothesName:  in.ClothesName,
		StoreID:      store.ID,
		StoreName:    store.Name,
		TotalAmount:  total,
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, it := range in.Items {
		order.Items = append(order.Items, entity.WorkOrderItem{
			ID:           uuid.New().String(),
			WorkOrderID:  order.ID,
			RepairWorkID: it.RepairWorkID,
			Name:         it.Name,
			Price:        it.Price,
		})
	}

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return ToResponse(order), nil
}

// GetByID devuelve una orden por id, nil si no existe.
func (uc *WorkOrderUseCase) GetByID(id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ToResponse(order), nil
}

// List devuelve el libro completo en su orden natural.
func (uc *WorkOrderUseCase) List() ([]dto.WorkOrderResponse, error) {
	list, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToResponse(o))
	}
	return items, nil
}

// ToResponse mapea una orden de dominio a su DTO de respuesta.
func ToResponse(o *entity.WorkOrder) *dto.WorkOrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.WorkOrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.WorkOrderItemResponse{
			ID:           it.ID,
			RepairWorkID: it.RepairWorkID,
			Name:         it.Name,
			Price:        it.Price,
		})
	}
	return &dto.WorkOrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		ClothesName:  o.ClothesName,
		StoreID:      o.StoreID,
		StoreName:    o.StoreName,
		Items:        items,
		TotalAmount:  o.TotalAmount,
		Date:         o.Date,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
