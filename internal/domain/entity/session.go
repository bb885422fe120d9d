package entity

// SessionState etiqueta de la máquina de estados de sesión.
type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
)

func (s SessionState) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// Session copia inmutable del estado de autenticación del cliente.
// Invariante: LoggedIn <=> Token != "" (y entonces User != nil).
type Session struct {
	State SessionState
	Token string
	User  *UserProfile
}

// IsLoggedIn lectura derivada de la etiqueta de estado.
func (s Session) IsLoggedIn() bool {
	return s.State == LoggedIn
}

// IsAdmin true solo con sesión iniciada y rol ADMIN.
func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.IsAdmin()
}

// Username nombre del usuario o "" si no hay sesión.
func (s Session) Username() string {
	if s.User == nil {
		return ""
	}
	return s.User.Username
}

// Role rol del usuario o "" si no hay sesión.
func (s Session) Role() Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}
