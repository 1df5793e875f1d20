package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las escrituras son todo-o-nada: ninguno de estos errores deja estado parcial.
var (
	ErrUnauthenticated   = errors.New("sin contexto de actor")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrTransientStore    = errors.New("almacén no disponible, reintentar")
)
