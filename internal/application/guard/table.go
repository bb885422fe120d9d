package guard

import "strings"

type entry struct {
	segments []string
	meta     Meta
}

// Table tabla de rutas: asocia patrones ("/orders/:orderNo") a metadatos.
// Las rutas desconocidas resuelven a Meta vacía (la página 404 es pública).
type Table struct {
	entries []entry
}

// NewTable construye una tabla vacía.
func NewTable() *Table {
	return &Table{}
}

// Add registra un patrón. Los segmentos que empiezan por ":" aceptan cualquier valor.
func (t *Table) Add(pattern string, m Meta) *Table {
	t.entries = append(t.entries, entry{segments: split(pattern), meta: m})
	return t
}

// Lookup devuelve la ruta resuelta para path (sin query ni fragmento).
func (t *Table) Lookup(path string) Route {
	path = clean(path)
	segs := split(path)
	for _, e := range t.entries {
		if match(e.segments, segs) {
			return Route{Path: path, Meta: e.meta}
		}
	}
	return Route{Path: path}
}

// DefaultTable rutas de la tienda y del panel de administración.
func DefaultTable() *Table {
	auth := Meta{RequiresAuth: true}
	admin := Meta{RequiresAuth: true, RequiresAdmin: true}

	return NewTable().
		Add(RouteHome, Meta{}).
		Add(RouteLogin, Meta{}).
		Add(RouteRegister, Meta{}).
		Add("/products", Meta{}).
		Add("/product/:id", Meta{}).
		Add("/category/:id", Meta{}).
		Add("/search", Meta{}).
		Add("/cart", auth).
		Add("/checkout", auth).
		Add("/orders", auth).
		Add("/order/:orderNo", auth).
		Add("/payment/:orderNo", auth).
		Add("/profile", auth).
		Add("/address", auth).
		Add(RouteAdmin, admin).
		Add("/admin/products", admin).
		Add("/admin/categories", admin).
		Add("/admin/orders", admin).
		Add("/admin/order/:orderNo", admin).
		Add("/admin/users", admin)
}

func clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return RouteHome
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return RouteHome
	}
	return path
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segs []string) bool {
	if len(pattern) != len(segs) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if p != segs[i] {
			return false
		}
	}
	return true
}
