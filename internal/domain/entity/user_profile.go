package entity

// Role rol del usuario en la tienda.
type Role string

// Roles válidos para UserProfile.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// UserProfile perfil del usuario autenticado tal como lo devuelve el servidor.
// Se reemplaza completo (nunca se muta campo a campo).
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     Role   `json:"role"`
	Status   int    `json:"status,omitempty"` // 1 activo, 0 deshabilitado
}

// IsAdmin indica si el perfil tiene rol ADMIN.
func (u UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Credentials entrada de login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInfo entrada de registro.
type RegisterInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// LoginResult token emitido más el perfil del usuario.
type LoginResult struct {
	Token string
	User  UserProfile
}

// ProfileUpdate campos editables del perfil propio.
type ProfileUpdate struct {
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}
