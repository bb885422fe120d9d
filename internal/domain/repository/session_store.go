package repository

import "github.com/jhoicas/mall-client/internal/domain/entity"

// SessionStore define el puerto de persistencia local de la sesión (DIP).
// Guarda exactamente dos valores: el token en crudo y el perfil serializado.
// Ambos se borran juntos con Clear, nunca por separado.
type SessionStore interface {
	// Token devuelve "" si no hay token guardado.
	Token() (string, error)
	SetToken(token string) error
	// User devuelve nil si no hay perfil guardado.
	User() (*entity.UserProfile, error)
	SetUser(user entity.UserProfile) error
	Clear() error
}
