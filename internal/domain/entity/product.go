package entity

import "github.com/shopspring/decimal"

// Estados de producto (entero en el wire).
const (
	ProductOffSale = 0
	ProductOnSale  = 1
)

// Product producto del catálogo.
type Product struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"categoryId"`
	Name       string          `json:"name"`
	Subtitle   string          `json:"subtitle,omitempty"`
	MainImage  string          `json:"mainImage,omitempty"`
	Detail     string          `json:"detail,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Status     int             `json:"status"`
}

// Page página de resultados tal como la devuelve el servidor.
type Page[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}
