package repository

import "github.com/jhoicas/mall-client/internal/domain/entity"

// CategoryRepository define el puerto de lectura de categorías (DIP).
type CategoryRepository interface {
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
