package repository

import "github.com/Vansh2812/Tailor/internal/domain/entity"

// RepairWorkRepository define el puerto de persistencia para el catálogo de
// servicios de reparación.
type RepairWorkRepository interface {
	Create(work *entity.RepairWork) error
	GetByID(id string) (*entity.RepairWork, error)
	List() ([]*entity.RepairWork, error)
	Update(work *entity.RepairWork) error
	Delete(id string) error
}
