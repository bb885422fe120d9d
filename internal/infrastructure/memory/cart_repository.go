package memory

import (
	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo carrito por usuario en memoria. Nombre, precio y stock se
// resuelven contra el catálogo en cada lectura.
type CartRepo struct {
	db *DB
}

func NewCartRepository(db *DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) ListByUser(userID int64) ([]entity.CartItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []entity.CartItem{}
	for _, row := range r.db.cart {
		if row.userID == userID {
			out = append(out, r.resolve(row))
		}
	}
	return out, nil
}

// Add suma la cantidad si el producto ya está; si no, crea la línea marcada.
func (r *CartRepo) Add(userID, productID int64, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.products[productID]
	if !ok || p.Status != entity.ProductOnSale {
		return nil, domain.ErrNotFound
	}
	for _, row := range r.db.cart {
		if row.userID == userID && row.productID == productID {
			if row.quantity+quantity > p.Stock {
				return nil, domain.ErrInsufficientStock
			}
			row.quantity += quantity
			it := r.resolve(row)
			return &it, nil
		}
	}
	if quantity > p.Stock {
		return nil, domain.ErrInsufficientStock
	}
	row := &cartRow{id: r.db.nextID(), userID: userID, productID: productID, quantity: quantity, checked: true}
	r.db.cart = append(r.db.cart, row)
	it := r.resolve(row)
	return &it, nil
}

func (r *CartRepo) UpdateQuantity(userID, itemID int64, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	row := r.find(userID, itemID)
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if p, ok := r.db.products[row.productID]; ok && quantity > p.Stock {
		return nil, domain.ErrInsufficientStock
	}
	row.quantity = quantity
	it := r.resolve(row)
	return &it, nil
}

func (r *CartRepo) Delete(userID, itemID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, row := range r.db.cart {
		if row.userID == userID && row.id == itemID {
			r.db.cart = append(r.db.cart[:i:i], r.db.cart[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *CartRepo) SetChecked(userID, itemID int64, checked bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	row := r.find(userID, itemID)
	if row == nil {
		return domain.ErrNotFound
	}
	row.checked = checked
	return nil
}

func (r *CartRepo) SetAllChecked(userID int64, checked bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, row := range r.db.cart {
		if row.userID == userID {
			row.checked = checked
		}
	}
	return nil
}

func (r *CartRepo) find(userID, itemID int64) *cartRow {
	for _, row := range r.db.cart {
		if row.userID == userID && row.id == itemID {
			return row
		}
	}
	return nil
}

// resolve requiere el mutex tomado.
func (r *CartRepo) resolve(row *cartRow) entity.CartItem {
	it := entity.CartItem{
		ID:        row.id,
		ProductID: row.productID,
		Quantity:  row.quantity,
		Checked:   row.checked,
	}
	if p, ok := r.db.products[row.productID]; ok {
		it.ProductName = p.Name
		it.ProductImage = p.MainImage
		it.ProductPrice = p.Price
		it.ProductStock = p.Stock
	}
	return it
}
