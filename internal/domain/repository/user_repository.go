package repository

import "github.com/jhoicas/mall-client/internal/domain/entity"

// UserRepository define el puerto de persistencia de cuentas del backend simulado (DIP).
type UserRepository interface {
	Create(account *entity.Account) error
	GetByID(id int64) (*entity.Account, error)
	// FindByUsername devuelve nil, nil si no existe.
	FindByUsername(username string) (*entity.Account, error)
	Update(account *entity.Account) error
	List(limit, offset int) ([]*entity.Account, int64, error)
}
