package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/domain"
	"github.com/Vansh2812/Tailor/internal/domain/entity"
	"github.com/Vansh2812/Tailor/internal/domain/repository"
)

// RepairWorkUseCase casos de uso CRUD para el catálogo de servicios.
type RepairWorkUseCase struct {
	repo repository.RepairWorkRepository
}

// NewRepairWorkUseCase construye el caso de uso.
func NewRepairWorkUseCase(repo repository.RepairWorkRepository) *RepairWorkUseCase {
	return &RepairWorkUseCase{repo: repo}
}

// Create crea un nuevo servicio de reparación. El nombre es obligatorio y el
// precio debe ser >= 0.
func (uc *RepairWorkUseCase) Create(in dto.CreateRepairWorkRequest) (*dto.RepairWorkResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	work := &entity.RepairWork{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(work); err != nil {
		return nil, err
	}
	return toRepairWorkResponse(work), nil
}

// List lista el catálogo completo.
func (uc *RepairWorkUseCase) List() ([]dto.RepairWorkResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepairWorkResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toRepairWorkResponse(w))
	}
	return items, nil
}

// Update actualiza un servicio (merge de campos presentes).
func (uc *RepairWorkUseCase) Update(id string, in dto.UpdateRepairWorkRequest) (*dto.RepairWorkResponse, error) {
	work, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, nil
	}
	if in.Name != nil {
		work.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		work.Price = *in.Price
	}
	work.UpdatedAt = time.Now()
	if err := uc.repo.Update(work); err != nil {
		return nil, err
	}
	return toRepairWorkResponse(work), nil
}

// Delete elimina un servicio por ID. Devuelve ErrNotFound si no existe.
// Las órdenes históricas no se ven afectadas: sus líneas son snapshots.
func (uc *RepairWorkUseCase) Delete(id string) error {
	work, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if work == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toRepairWorkResponse(w *entity.RepairWork) *dto.RepairWorkResponse {
	if w == nil {
		return nil
	}
	return &dto.RepairWorkResponse{
		ID:        w.ID,
		Name:      w.Name,
		Price:     w.Price,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
