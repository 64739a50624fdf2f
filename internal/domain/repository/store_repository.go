package repository

import "github.com/Vansh2812/Tailor/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	List() ([]*entity.Store, error)
	Update(store *entity.Store) error
	Delete(id string) error
}
