// Package memory implementa los puertos de persistencia del backend simulado
// sobre mapas en memoria protegidos por un único mutex.
package memory

import (
	"sync"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

type cartRow struct {
	id        int64
	userID    int64
	productID int64
	quantity  int
	checked   bool
}

// DB tablas del backend simulado. Los repositorios comparten una instancia.
type DB struct {
	mu         sync.RWMutex
	accounts   map[int64]*entity.Account
	products   map[int64]*entity.Product
	categories map[int64]*entity.Category
	cart       []*cartRow
	seq        int64
}

// NewDB crea una base vacía.
func NewDB() *DB {
	return &DB{
		accounts:   make(map[int64]*entity.Account),
		products:   make(map[int64]*entity.Product),
		categories: make(map[int64]*entity.Category),
	}
}

func (db *DB) nextID() int64 {
	db.seq++
	return db.seq
}
