package memory

import (
	"sort"
	"strings"

	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
)

// ProductRepo catálogo en memoria.
type ProductRepo struct {
	db *DB
}

func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Put inserta o reemplaza un producto (ID 0 asigna uno nuevo). Lo usa la carga inicial.
func (r *ProductRepo) Put(p entity.Product) *entity.Product {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.db.nextID()
	}
	r.db.products[p.ID] = &p
	cp := p
	return &cp
}

func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// List filtra por nombre (sin distinguir mayúsculas) y categoría; solo productos en venta.
func (r *ProductRepo) List(keyword string, categoryID int64, limit, offset int) ([]*entity.Product, int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	kw := strings.ToLower(strings.TrimSpace(keyword))
	var out []*entity.Product
	for _, p := range r.db.products {
		if p.Status != entity.ProductOnSale {
			continue
		}
		if categoryID > 0 && p.CategoryID != categoryID {
			continue
		}
		if kw != "" && !strings.Contains(strings.ToLower(p.Name), kw) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), int64(len(out)), nil
}

// CategoryRepo categorías en memoria.
type CategoryRepo struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Put inserta o reemplaza una categoría (ID 0 asigna uno nuevo).
func (r *CategoryRepo) Put(c entity.Category) *entity.Category {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.db.nextID()
	}
	r.db.categories[c.ID] = &c
	cp := c
	return &cp
}

func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, ok := r.db.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// List todas las categorías por SortOrder y luego ID.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.db.categories))
	for _, c := range r.db.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
