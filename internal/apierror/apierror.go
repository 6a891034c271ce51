// Package apierror provides the error taxonomy shared by services and handlers.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError reports missing or malformed input. No state was changed.
type ValidationError struct {
	Detail string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string { return e.Detail }

func NewValidation(detail string, fields map[string]string) *ValidationError {
	return &ValidationError{Detail: detail, Fields: fields}
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Recurso string // "producto", "cliente", "venta", …
	ID      string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s no encontrado", e.Recurso)
	}
	return fmt.Sprintf("%s %s no encontrado", e.Recurso, e.ID)
}

func NewNotFound(recurso, id string) *NotFoundError {
	return &NotFoundError{Recurso: recurso, ID: id}
}

// InsufficientStockError names the product and the available/requested amounts
// so the caller can act on it.
type InsufficientStockError struct {
	Producto   string
	Disponible int
	Solicitado int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente para %s. Disponible: %d, Solicitado: %d",
		e.Producto, e.Disponible, e.Solicitado)
}

// ConflictError reports a duplicate unique name or a delete blocked by
// existing references.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string { return e.Detail }

func NewConflict(detail string) *ConflictError { return &ConflictError{Detail: detail} }

// PersistenceError wraps an underlying storage failure. By the time one of
// these surfaces, every in-progress mutation has been rolled back.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "error de persistencia" }
func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistence(err error) *PersistenceError { return &PersistenceError{Err: err} }

// Status maps a service error to its HTTP status code and safe response body.
// Unknown errors map to 500 with a generic message — internals never leak.
func Status(err error) (int, any) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, New(nf.Error())
	}
	var is *InsufficientStockError
	if errors.As(err, &is) {
		return http.StatusBadRequest, New(is.Error())
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		return http.StatusConflict, New(ce.Error())
	}
	return http.StatusInternalServerError, New("Error interno del servidor")
}
