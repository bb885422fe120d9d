package repository

import "github.com/jhoicas/mall-client/internal/domain/entity"

// CartRepository define el puerto de persistencia del carrito en el backend simulado (DIP).
// Las líneas devueltas ya traen nombre y precio del producto resueltos.
type CartRepository interface {
	ListByUser(userID int64) ([]entity.CartItem, error)
	// Add suma quantity si el producto ya está en el carrito; si no, crea la línea marcada.
	Add(userID, productID int64, quantity int) (*entity.CartItem, error)
	UpdateQuantity(userID, itemID int64, quantity int) (*entity.CartItem, error)
	Delete(userID, itemID int64) error
	SetChecked(userID, itemID int64, checked bool) error
	SetAllChecked(userID int64, checked bool) error
}
