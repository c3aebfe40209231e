package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Taxonomía del motor de consistencia. Los tres se detectan de forma
	// síncrona antes de cualquier escritura; el caller aborta la operación
	// completa sin escrituras parciales.
	ErrArchivedReference     = errors.New("la referencia apunta a un registro archivado")
	ErrDependentsStillActive = errors.New("existen dependientes activos que lo referencian")
	ErrInvalidTransition     = errors.New("transición de estado inválida")
)
