package domain

import (
	"errors"
	"fmt"
)

// Clases de error de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("registro duplicado")
	ErrValidation         = errors.New("error de validación de campos")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrDataAccess         = errors.New("error de acceso a datos")
)

// Error lleva el mensaje para el cliente y, en validaciones, el detalle por campo.
// Unwrap devuelve la clase (ErrNotFound, ErrDuplicate, ...) para usar errors.Is.
type Error struct {
	Kind    error
	Message string
	Fields  []string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound construye un ErrNotFound con mensaje formateado.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Duplicate construye un ErrDuplicate con mensaje formateado.
func Duplicate(format string, args ...any) error {
	return &Error{Kind: ErrDuplicate, Message: fmt.Sprintf(format, args...)}
}

// Validation construye un ErrValidation con los mensajes por campo.
func Validation(fields ...string) error {
	return &Error{Kind: ErrValidation, Message: "Error de validación de campos", Fields: fields}
}

// InvalidCredentials no distingue entre usuario inexistente y contraseña incorrecta.
func InvalidCredentials() error {
	return &Error{Kind: ErrInvalidCredentials, Message: "Credenciales incorrectas, vuelva a intentarlo"}
}

// DataAccess envuelve un error del almacenamiento conservando la causa.
func DataAccess(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDataAccess, err)
}

// Unauthorized petición sin token válido.
func Unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}
