package domain

import (
	"errors"
	"fmt"
)

// Errores de persistencia (sin dependencias externas). Los repositorios los devuelven
// y los casos de uso los traducen a un *Error con su código.
var (
	ErrDuplicate  = errors.New("recurso duplicado")
	ErrForeignKey = errors.New("violación de llave foránea")
)

// ErrorCode es el conjunto cerrado de códigos de error expuestos al cliente.
type ErrorCode string

const (
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeDuplicate  ErrorCode = "DUPLICATE_ERROR"
	CodeConstraint ErrorCode = "CONSTRAINT_ERROR"
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
)

// Error es un fallo de dominio con código y mensaje para el cliente.
// Err conserva la causa original (solo para logs, nunca se envía al cliente).
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound construye un error NOT_FOUND.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation construye un error VALIDATION_ERROR.
func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Duplicate construye un error DUPLICATE_ERROR.
func Duplicate(format string, args ...any) *Error {
	return &Error{Code: CodeDuplicate, Message: fmt.Sprintf(format, args...)}
}

// Constraint construye un error CONSTRAINT_ERROR.
func Constraint(format string, args ...any) *Error {
	return &Error{Code: CodeConstraint, Message: fmt.Sprintf(format, args...)}
}

// Internal envuelve un fallo inesperado (conectividad, SQL, etc.) como INTERNAL_ERROR.
// Si err ya es un *Error se devuelve tal cual.
func Internal(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Code: CodeInternal, Message: "error interno del servidor", Err: err}
}

// CodeOf devuelve el código de err, o CodeInternal si no es un *Error.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
