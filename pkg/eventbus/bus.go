// Package eventbus es un bus de eventos tipado y síncrono.
//
// Publish ejecuta los handlers en el goroutine de quien publica, en orden de
// suscripción. Un handler que falla o entra en pánico no impide que corran
// los siguientes; los errores se agregan con errors.Join.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Handler procesa un evento de tipo T.
type Handler[T any] func(ctx context.Context, event T) error

type subscription[T any] struct {
	id      uint64
	name    string
	handler Handler[T]
}

// Bus distribuye eventos de tipo T a sus suscriptores.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   []subscription[T]
	nextID uint64
}

// New crea un bus vacío.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registra un handler con un nombre (para logs y errores) y
// devuelve la función que lo da de baja.
func (b *Bus[T]) Subscribe(name string, h Handler[T]) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription[T]{id: id, name: name, handler: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish entrega el evento a todos los suscriptores actuales.
func (b *Bus[T]) Publish(ctx context.Context, event T) error {
	b.mu.RLock()
	subs := make([]subscription[T], len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	var errs []error
	for _, s := range subs {
		if err := safeHandle(ctx, s, event); err != nil {
			errs = append(errs, fmt.Errorf("handler %s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}

// Len número de suscriptores activos.
func (b *Bus[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func safeHandle[T any](ctx context.Context, s subscription[T], event T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.handler(ctx, event)
}
