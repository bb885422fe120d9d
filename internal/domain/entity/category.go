package entity

// Category categoría del catálogo (árbol por ParentID).
type Category struct {
	ID        int64  `json:"id"`
	ParentID  int64  `json:"parentId"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder,omitempty"`
}
