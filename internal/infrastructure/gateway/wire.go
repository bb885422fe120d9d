package gateway

import (
	"bytes"
	"fmt"
	"strconv"
)

// Flag booleano que en el wire viaja como 0/1. Es el único punto donde se
// convierte entre bool (memoria) y entero (API); los colaboradores lo usan
// tanto en cuerpos JSON como en parámetros de query.
type Flag bool

// MarshalJSON escribe 1 o 0.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON acepta 0/1, true/false y null (= false).
func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "1", "true":
		*f = true
	case "0", "false", "null":
		*f = false
	default:
		n, err := strconv.Atoi(string(bytes.Trim(b, `"`)))
		if err != nil {
			return fmt.Errorf("gateway: flag inválido %s", b)
		}
		*f = n != 0
	}
	return nil
}

// Param valor para query string: "1" o "0".
func (f Flag) Param() string {
	if f {
		return "1"
	}
	return "0"
}

// Bool valor en memoria.
func (f Flag) Bool() bool { return bool(f) }
