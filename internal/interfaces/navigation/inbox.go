package navigation

import (
	"context"
	"sync"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// Inbox acumula avisos y alertas para quien los muestre después (CLI, tests).
// Alert se confirma sola salvo que AlertErr tenga valor.
type Inbox struct {
	mu       sync.Mutex
	notices  []entity.Notice
	alerts   []string
	AlertErr error
}

func (b *Inbox) Notify(n entity.Notice) {
	b.mu.Lock()
	b.notices = append(b.notices, n)
	b.mu.Unlock()
}

func (b *Inbox) Alert(_ context.Context, title, message string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = append(b.alerts, title+": "+message)
	return b.AlertErr
}

// Drain devuelve y descarta los avisos pendientes.
func (b *Inbox) Drain() []entity.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}

// Alerts alertas mostradas hasta ahora.
func (b *Inbox) Alerts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.alerts...)
}
