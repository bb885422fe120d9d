// Package cart mantiene el espejo en memoria del carrito del servidor.
//
// Las mutaciones locales se aplican solo después de que su llamada termina con
// éxito; un fallo no toca el espejo y se propaga. No hay rollback de
// mutaciones anteriores ni secuenciación entre llamadas concurrentes: varios
// Fetch en vuelo dejan la respuesta que llegue última.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

const (
	MsgAdded   = "producto agregado al carrito"
	MsgRemoved = "producto eliminado del carrito"
)

// Synchronizer dueño del espejo del carrito. Seguro para uso concurrente.
type Synchronizer struct {
	mu       sync.Mutex
	items    []entity.CartItem
	inFlight int

	svc    Service
	notify Notifier
	log    zerolog.Logger
}

// NewSynchronizer crea el sincronizador con el espejo vacío. notify puede ser nil.
func NewSynchronizer(svc Service, notify Notifier, log zerolog.Logger) (*Synchronizer, error) {
	if svc == nil {
		return nil, fmt.Errorf("cart: servicio requerido")
	}
	return &Synchronizer{svc: svc, notify: notify, log: log}, nil
}

// Fetch reemplaza el espejo completo por la foto actual del servidor.
// Si la llamada falla el espejo queda vacío y se devuelve el error.
func (s *Synchronizer) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()

	items, err := s.svc.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if err != nil {
		s.items = nil
		s.log.Error().Err(err).Msg("no se pudo obtener el carrito")
		return err
	}
	s.items = append([]entity.CartItem(nil), items...)
	s.log.Debug().Int("items", len(items)).Msg("carrito sincronizado")
	return nil
}

// AddItem agrega en el servidor y luego siempre vuelve a leer el carrito completo.
// Una cantidad <= 0 se trata como 1. El resultado refleja solo el alta: si la
// relectura falla el espejo queda vacío pero AddItem devuelve nil.
func (s *Synchronizer) AddItem(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	if err := s.svc.Add(ctx, productID, quantity); err != nil {
		return err
	}
	s.notice(MsgAdded)
	if err := s.Fetch(ctx); err != nil {
		s.log.Warn().Err(err).Int64("product_id", productID).Msg("producto agregado, carrito sin refrescar")
	}
	return nil
}

// UpdateQuantity escribe en el servidor y, con éxito, fija localmente la cantidad pedida.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	if err := s.svc.UpdateQuantity(ctx, id, quantity); err != nil {
		return err
	}
	s.mutate(id, func(it *entity.CartItem) { it.Quantity = quantity })
	return nil
}

// RemoveItem borra en el servidor y, con éxito, quita la línea del espejo.
func (s *Synchronizer) RemoveItem(ctx context.Context, id int64) error {
	if err := s.svc.Remove(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notice(MsgRemoved)
	return nil
}

// ToggleCheck marca o desmarca una línea tras el acuse del servidor.
func (s *Synchronizer) ToggleCheck(ctx context.Context, id int64, checked bool) error {
	if err := s.svc.SetChecked(ctx, id, checked); err != nil {
		return err
	}
	s.mutate(id, func(it *entity.CartItem) { it.Checked = checked })
	return nil
}

// ToggleCheckAll marca o desmarca todas las líneas tras el acuse del servidor.
func (s *Synchronizer) ToggleCheckAll(ctx context.Context, checked bool) error {
	if err := s.svc.SetAllChecked(ctx, checked); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.items {
		s.items[i].Checked = checked
	}
	s.mu.Unlock()
	return nil
}

// Clear vacía el espejo local sin llamar al servidor (p. ej. al cerrar sesión).
func (s *Synchronizer) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Items copia de las líneas actuales.
func (s *Synchronizer) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.CartItem(nil), s.items...)
}

// Loading true mientras haya algún Fetch en vuelo.
func (s *Synchronizer) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Count suma de cantidades de todas las líneas.
func (s *Synchronizer) Count() int {
	n := 0
	for _, it := range s.Items() {
		n += it.Quantity
	}
	return n
}

// CheckedItems líneas marcadas, en orden.
func (s *Synchronizer) CheckedItems() []entity.CartItem {
	var out []entity.CartItem
	for _, it := range s.Items() {
		if it.Checked {
			out = append(out, it)
		}
	}
	return out
}

// CheckedCount suma de cantidades de las líneas marcadas.
func (s *Synchronizer) CheckedCount() int {
	n := 0
	for _, it := range s.CheckedItems() {
		n += it.Quantity
	}
	return n
}

// CheckedTotal suma de subtotales de las líneas marcadas.
func (s *Synchronizer) CheckedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.CheckedItems() {
		total = total.Add(it.Subtotal())
	}
	return total
}

// IsAllChecked true si hay líneas y todas están marcadas.
func (s *Synchronizer) IsAllChecked() bool {
	items := s.Items()
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if !it.Checked {
			return false
		}
	}
	return true
}

func (s *Synchronizer) mutate(id int64, fn func(*entity.CartItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			fn(&s.items[i])
			return
		}
	}
}

func (s *Synchronizer) notice(msg string) {
	if s.notify != nil {
		s.notify.Notify(entity.Notice{Level: entity.NoticeSuccess, Message: msg})
	}
}
