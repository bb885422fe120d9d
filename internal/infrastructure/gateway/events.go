package gateway

import "time"

// SessionInvalidated se publica cuando el servidor rechaza la credencial de una
// llamada autenticada (401 fuera de la ruta de login). Lo consumen el gestor de
// sesión y el navegador; el gateway no conoce a ninguno de los dos.
type SessionInvalidated struct {
	Method    string
	Path      string
	RequestID string
	At        time.Time
}
