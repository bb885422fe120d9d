package gateway

import (
	"errors"
	"fmt"
)

// Kind clasificación de un fallo de llamada. Solo el gateway clasifica;
// el resto de componentes reenvía el error tal cual.
type Kind int

const (
	KindNetwork            Kind = iota + 1 // no hubo respuesta (red, timeout)
	KindCredentialRejected                 // 401 sobre la ruta de login
	KindSessionInvalidated                 // 401 sobre cualquier otra ruta
	KindForbidden                          // 403
	KindNotFound                           // 404
	KindServerFault                        // 500
	KindHTTP                               // cualquier otro estado no 2xx
	KindBusiness                           // envelope bien formado con code != 200
	KindConfig                             // petición mal construida del lado cliente
)

var kindNames = map[Kind]string{
	KindNetwork:            "network",
	KindCredentialRejected: "credential_rejected",
	KindSessionInvalidated: "session_invalidated",
	KindForbidden:          "forbidden",
	KindNotFound:           "not_found",
	KindServerFault:        "server_fault",
	KindHTTP:               "http",
	KindBusiness:           "business",
	KindConfig:             "config",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Mensajes por defecto, uno por clase; solo se usan si el servidor no envía message.
var fallbackMessages = map[Kind]string{
	KindNetwork:            "error de red, verifique la conexión",
	KindCredentialRejected: "usuario o contraseña incorrectos",
	KindSessionInvalidated: "la sesión expiró, inicie sesión nuevamente",
	KindForbidden:          "no tiene permiso para acceder",
	KindNotFound:           "el recurso solicitado no existe",
	KindServerFault:        "error del servidor, intente más tarde",
	KindHTTP:               "la solicitud falló",
	KindBusiness:           "operación fallida",
	KindConfig:             "la solicitud falló",
}

// FallbackMessage mensaje fijo de una clase.
func FallbackMessage(k Kind) string {
	return fallbackMessages[k]
}

// Error fallo clasificado de una llamada al API.
// Message es el texto visible al usuario: el del servidor si lo envió, si no el fijo de la clase.
type Error struct {
	Kind    Kind
	Status  int    // estado HTTP (0 si no hubo respuesta)
	Code    int    // code del envelope (solo KindBusiness)
	Message string
	Method  string
	Path    string
	Err     error // causa subyacente (red, json, url...)
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is compara por clase, de modo que errors.Is(err, gateway.ErrNotFound) funciona
// con cualquier *Error de esa clase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Centinelas por clase para errors.Is.
var (
	ErrNetwork            = &Error{Kind: KindNetwork, Message: fallbackMessages[KindNetwork]}
	ErrCredentialRejected = &Error{Kind: KindCredentialRejected, Message: fallbackMessages[KindCredentialRejected]}
	ErrSessionInvalidated = &Error{Kind: KindSessionInvalidated, Message: fallbackMessages[KindSessionInvalidated]}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: fallbackMessages[KindForbidden]}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: fallbackMessages[KindNotFound]}
	ErrServerFault        = &Error{Kind: KindServerFault, Message: fallbackMessages[KindServerFault]}
	ErrHTTP               = &Error{Kind: KindHTTP, Message: fallbackMessages[KindHTTP]}
	ErrBusiness           = &Error{Kind: KindBusiness, Message: fallbackMessages[KindBusiness]}
	ErrConfig             = &Error{Kind: KindConfig, Message: fallbackMessages[KindConfig]}
)

// KindOf devuelve la clase de un error del gateway, o 0 si no lo es.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}

// Message devuelve el texto a mostrar al usuario para cualquier error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Message
	}
	return err.Error()
}

func newError(kind Kind, serverMessage string) *Error {
	msg := serverMessage
	if msg == "" {
		msg = fallbackMessages[kind]
	}
	return &Error{Kind: kind, Message: msg}
}
