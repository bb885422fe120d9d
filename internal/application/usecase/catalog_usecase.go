package usecase

import (
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/domain/repository"
)

// Tamaños de página del catálogo.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CatalogUseCase lectura paginada de productos y categorías para el backend simulado.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// Products página de productos en venta, filtrada por nombre y categoría.
func (uc *CatalogUseCase) Products(keyword string, categoryID int64, page, size int) (*entity.Page[entity.Product], error) {
	page, size = NormalizePage(page, size)
	list, total, err := uc.products.List(keyword, categoryID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	out := &entity.Page[entity.Product]{List: make([]entity.Product, 0, len(list)), Total: total, Page: page, Size: size, Pages: pages(total, size)}
	for _, p := range list {
		out.List = append(out.List, *p)
	}
	return out, nil
}

// Product obtiene un producto por ID.
func (uc *CatalogUseCase) Product(id int64) (*entity.Product, error) {
	return uc.products.GetByID(id)
}

// Categories todas las categorías en orden.
func (uc *CatalogUseCase) Categories() ([]entity.Category, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(list))
	for _, c := range list {
		out = append(out, *c)
	}
	return out, nil
}

// Category obtiene una categoría por ID.
func (uc *CatalogUseCase) Category(id int64) (*entity.Category, error) {
	return uc.categories.GetByID(id)
}

// NormalizePage aplica página 1 y tamaño por defecto a valores fuera de rango.
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}

func pages(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}
