package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidIdentifier    = errors.New("identificador inválido")
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrInvalidConfiguration = errors.New("configuración de umbrales inválida")
	ErrDataAccess           = errors.New("error de acceso a datos")
)
