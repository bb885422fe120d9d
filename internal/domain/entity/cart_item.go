package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito. La identidad es ID; ProductPrice lo calcula el servidor.
type CartItem struct {
	ID           int64
	ProductID    int64
	ProductName  string
	ProductImage string
	ProductPrice decimal.Decimal
	ProductStock int
	Quantity     int // >= 1
	Checked      bool
}

// Subtotal precio por cantidad.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.ProductPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
