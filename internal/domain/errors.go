package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrInvalidInput cubre parámetros y cuerpos genéricos (CUIT, año, formato,
// etiquetas de validación); no aplica al contenido de una OC.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Errores del motor de órdenes de compra.
// ErrValidation señala una OC o un tope con datos incorrectos, renglón por renglón.
// ErrConfiguration y ErrValidation son corregibles por quien llama;
// ErrPersistence envuelve el error original del almacenamiento.
var (
	ErrConfiguration = errors.New("configuración inválida")
	ErrValidation    = errors.New("datos de la orden inválidos")
	ErrNumericRange  = errors.New("monto fuera del rango soportado")
	ErrPersistence   = errors.New("error de persistencia")
)
