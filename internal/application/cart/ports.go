package cart

import (
	"context"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// Service colaborador de /cart. Los booleanos se codifican como 0/1 en el adaptador.
type Service interface {
	List(ctx context.Context) ([]entity.CartItem, error)
	Add(ctx context.Context, productID int64, quantity int) error
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Remove(ctx context.Context, id int64) error
	SetChecked(ctx context.Context, id int64, checked bool) error
	SetAllChecked(ctx context.Context, checked bool) error
}

// Notifier recibe avisos de éxito de las operaciones.
type Notifier interface {
	Notify(n entity.Notice)
}
