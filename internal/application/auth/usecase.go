// Package auth contiene los casos de uso de autenticación del backend simulado:
// registro, login con bcrypt + JWT, revocación de tokens en logout y gestión de cuentas.
package auth

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mall-client/internal/domain"
	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/domain/repository"
	"github.com/jhoicas/mall-client/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// MinPasswordLength largo mínimo de contraseña en registro.
const MinPasswordLength = 6

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig

	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, revoked: make(map[string]struct{})}
}

// RegisterUser crea una cuenta USER activa con el password hasheado con bcrypt.
func (uc *AuthUseCase) RegisterUser(in entity.RegisterInfo) (*entity.UserProfile, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || len(in.Password) < MinPasswordLength {
		return nil, domain.ErrInvalidInput
	}
	return uc.CreateAccount(in, entity.RoleUser)
}

// CreateAccount crea una cuenta con el rol indicado (lo usa también la carga inicial).
func (uc *AuthUseCase) CreateAccount(in entity.RegisterInfo, role entity.Role) (*entity.UserProfile, error) {
	existing, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account := &entity.Account{
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         role,
		Status:       1,
	}
	if err := uc.userRepo.Create(account); err != nil {
		return nil, err
	}
	p := account.Profile()
	return &p, nil
}

// Login verifica username/password, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(in entity.Credentials) (*entity.LoginResult, error) {
	account, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !account.Active() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Username, string(account.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &entity.LoginResult{Token: token, User: account.Profile()}, nil
}

// Authenticate valida firma, expiración y revocación del token.
func (uc *AuthUseCase) Authenticate(token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	uc.mu.RLock()
	_, revoked := uc.revoked[token]
	uc.mu.RUnlock()
	if revoked {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// Logout revoca el token; a partir de aquí cualquier llamada con él recibe 401.
func (uc *AuthUseCase) Logout(token string) {
	uc.mu.Lock()
	uc.revoked[token] = struct{}{}
	uc.mu.Unlock()
}
