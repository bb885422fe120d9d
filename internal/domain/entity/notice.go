package entity

// NoticeLevel severidad de un aviso al usuario.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice aviso breve para mostrar al usuario (toast).
type Notice struct {
	Level   NoticeLevel
	Message string
}
