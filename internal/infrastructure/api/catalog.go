package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// ProductAPI colaborador de /products (público).
type ProductAPI struct {
	c Caller
}

// NewProductAPI construye el colaborador.
func NewProductAPI(c Caller) *ProductAPI {
	return &ProductAPI{c: c}
}

// List GET /products?page&size&keyword&categoryId&status.
func (a *ProductAPI) List(ctx context.Context, q PageQuery) (*entity.Page[entity.Product], error) {
	return a.page(ctx, "/products", q)
}

// ByCategory GET /products/category/{id}.
func (a *ProductAPI) ByCategory(ctx context.Context, categoryID int64, q PageQuery) (*entity.Page[entity.Product], error) {
	return a.page(ctx, pathf("/products/category/%d", categoryID), q)
}

// ByStatus GET /products/status/{status}.
func (a *ProductAPI) ByStatus(ctx context.Context, status string, q PageQuery) (*entity.Page[entity.Product], error) {
	return a.page(ctx, pathf("/products/status/%s", status), q)
}

// Search GET /products/search?keyword=.
func (a *ProductAPI) Search(ctx context.Context, keyword string, q PageQuery) (*entity.Page[entity.Product], error) {
	q.Keyword = keyword
	return a.page(ctx, "/products/search", q)
}

// Get GET /products/{id}.
func (a *ProductAPI) Get(ctx context.Context, id int64) (*entity.Product, error) {
	var out entity.Product
	if err := a.c.Call(ctx, http.MethodGet, pathf("/products/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ProductAPI) page(ctx context.Context, path string, q PageQuery) (*entity.Page[entity.Product], error) {
	var out entity.Page[entity.Product]
	if err := a.c.Call(ctx, http.MethodGet, path, nil, q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CategoryAPI colaborador de /categories (público).
type CategoryAPI struct {
	c Caller
}

// NewCategoryAPI construye el colaborador.
func NewCategoryAPI(c Caller) *CategoryAPI {
	return &CategoryAPI{c: c}
}

// All GET /categories.
func (a *CategoryAPI) All(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := a.c.Call(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get GET /categories/{id}.
func (a *CategoryAPI) Get(ctx context.Context, id int64) (*entity.Category, error) {
	var out entity.Category
	if err := a.c.Call(ctx, http.MethodGet, pathf("/categories/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
