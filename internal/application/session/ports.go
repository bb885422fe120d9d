package session

import (
	"context"

	"github.com/jhoicas/mall-client/internal/domain/entity"
)

// AuthService colaborador de /auth.
type AuthService interface {
	Login(ctx context.Context, creds entity.Credentials) (*entity.LoginResult, error)
	Register(ctx context.Context, info entity.RegisterInfo) error
	Logout(ctx context.Context) error
}

// ProfileService colaborador de /user/info.
type ProfileService interface {
	Info(ctx context.Context) (*entity.UserProfile, error)
	Update(ctx context.Context, in entity.ProfileUpdate) (*entity.UserProfile, error)
}

// Navigator facilidad de navegación (la implementa el router).
type Navigator interface {
	Push(path string)
}

// Notifier muestra avisos al usuario. Alert bloquea hasta que el usuario
// confirma; devuelve error si se descarta.
type Notifier interface {
	Notify(n entity.Notice)
	Alert(ctx context.Context, title, message string) error
}
