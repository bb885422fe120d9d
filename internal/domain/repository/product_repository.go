package repository

import "github.com/jhoicas/mall-client/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo (DIP).
type ProductRepository interface {
	GetByID(id int64) (*entity.Product, error)
	List(keyword string, categoryID int64, limit, offset int) ([]*entity.Product, int64, error)
}
