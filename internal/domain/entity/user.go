package entity

import "time"

// Account usuario tal como lo guarda el backend simulado (con hash de password).
// El cliente nunca ve Account; recibe UserProfile.
type Account struct {
	ID           int64
	Username     string
	Email        string
	Phone        string
	Avatar       string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         Role
	Status       int // 1 activo, 0 deshabilitado
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active indica si la cuenta puede iniciar sesión.
func (a Account) Active() bool {
	return a.Status == 1
}

// Profile proyección pública de la cuenta (sin password).
func (a Account) Profile() UserProfile {
	return UserProfile{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Phone:    a.Phone,
		Avatar:   a.Avatar,
		Role:     a.Role,
		Status:   a.Status,
	}
}
