// Package guard decide, en cada intento de navegación, si la ruta destino se
// permite o se redirige. Es una función pura sobre la sesión actual y los
// metadatos de la ruta; nunca se cachea el resultado.
package guard

import "github.com/jhoicas/mall-client/internal/domain/entity"

// Rutas con nombre usadas por la lógica de sesión y del guard.
const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteAdmin    = "/admin"
)

// Mensajes de los avisos que acompañan una redirección.
const (
	MsgLoginRequired = "inicie sesión primero"
	MsgAdminRequired = "no tiene permisos de administrador"
)

// Meta metadatos de autorización de una ruta.
type Meta struct {
	RequiresAuth  bool
	RequiresAdmin bool
}

// Route destino de la navegación.
type Route struct {
	Path string
	Meta Meta
}

// Decision resultado del guard. Con Allow=false, Redirect indica el destino.
type Decision struct {
	Allow    bool
	Redirect string
	Notice   *entity.Notice
}

// Decide aplica la política en orden:
//  1. requiere sesión y no hay sesión: login con aviso de advertencia
//  2. requiere admin y el usuario no es ADMIN: inicio con aviso de error
//  3. login o registro con sesión iniciada: inicio sin aviso
//  4. en otro caso se permite
func Decide(to Route, s entity.Session) Decision {
	switch {
	case to.Meta.RequiresAuth && !s.IsLoggedIn():
		return redirect(RouteLogin, &entity.Notice{Level: entity.NoticeWarning, Message: MsgLoginRequired})
	case to.Meta.RequiresAdmin && !s.IsAdmin():
		return redirect(RouteHome, &entity.Notice{Level: entity.NoticeError, Message: MsgAdminRequired})
	case isAuthPage(to.Path) && s.IsLoggedIn():
		return redirect(RouteHome, nil)
	default:
		return Decision{Allow: true}
	}
}

func redirect(path string, n *entity.Notice) Decision {
	return Decision{Redirect: path, Notice: n}
}

func isAuthPage(path string) bool {
	return path == RouteLogin || path == RouteRegister
}
