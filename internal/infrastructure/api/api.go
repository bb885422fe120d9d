// Package api contiene los colaboradores de recursos: una función por llamada
// REST, cada una delegando en el gateway con método, ruta, cuerpo y query.
// No hay lógica aquí más allá de traducir entre entidades y el formato del wire.
package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Caller es lo que los colaboradores necesitan del gateway.
type Caller interface {
	Call(ctx context.Context, method, path string, body any, query url.Values, out any) error
}

// PageQuery paginación y filtros de listados.
type PageQuery struct {
	Page       int
	Size       int
	Keyword    string
	CategoryID int64
	Status     string
	Role       string
}

// Values serializa solo los campos no vacíos.
func (q PageQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if q.CategoryID > 0 {
		v.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Role != "" {
		v.Set("role", q.Role)
	}
	return v
}

func pathf(format string, args ...any) string {
	for i, a := range args {
		if s, ok := a.(string); ok {
			args[i] = url.PathEscape(s)
		}
	}
	return fmt.Sprintf(format, args...)
}

func single(key, value string) url.Values {
	return url.Values{key: []string{value}}
}
