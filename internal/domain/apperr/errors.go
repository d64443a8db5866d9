// Package apperr holds the error kinds shared by every clinic module.
// Handlers translate them to HTTP through platform/problem.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrProtected se devuelve al borrar una fila todavía referenciada (FK RESTRICT).
	ErrProtected = errors.New("protected: referenced by other records")

	// ErrReference es una violación de FK detectada por el store.
	ErrReference = errors.New("referenced record does not exist")

	ErrConflict = errors.New("unique constraint violated")
)

// NonFieldErrors es el campo usado para errores que no pertenecen a un único campo.
const NonFieldErrors = "non_field_errors"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa errores por campo. Los campos anidados usan puntos: "species.name".
type ValidationError struct {
	Fields []FieldError
}

func NewValidation(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// Nest prefija todos los campos con parent (p.ej. "species").
func (v *ValidationError) Nest(parent string) *ValidationError {
	out := &ValidationError{Fields: make([]FieldError, 0, len(v.Fields))}
	for _, f := range v.Fields {
		out.Add(parent+"."+f.Field, f.Message)
	}
	return out
}

func (v *ValidationError) Empty() bool {
	return v == nil || len(v.Fields) == 0
}

// OrNil devuelve nil cuando no se acumuló ningún error, para usar como `return v.OrNil()`.
func (v *ValidationError) OrNil() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConflictError es una violación de unicidad reportada por el store.
// Fields usa los nombres de la API (veterinarian, no veterinarian_id).
type ConflictError struct {
	Fields []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unique constraint violated on (%s)", strings.Join(e.Fields, ", "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// Covers indica si el conflicto es exactamente sobre esos campos (en cualquier orden).
func (e *ConflictError) Covers(fields ...string) bool {
	if len(fields) != len(e.Fields) {
		return false
	}
	have := map[string]struct{}{}
	for _, f := range e.Fields {
		have[f] = struct{}{}
	}
	for _, f := range fields {
		if _, ok := have[f]; !ok {
			return false
		}
	}
	return true
}

// AsValidation convierte un conflicto de unicidad al error de validación que ve el cliente.
func (e *ConflictError) AsValidation(entity string) *ValidationError {
	switch len(e.Fields) {
	case 0:
		return NewValidation(NonFieldErrors, entity+" already exists")
	case 1:
		return NewValidation(e.Fields[0], fmt.Sprintf("%s with this %s already exists", entity, e.Fields[0]))
	default:
		return NewValidation(NonFieldErrors, fmt.Sprintf("the fields %s must make a unique set", strings.Join(e.Fields, ", ")))
	}
}

// FromStore traduce errores de conflicto del store a errores de validación; el resto pasa tal cual.
func FromStore(entity string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.AsValidation(entity)
	}
	if errors.Is(err, ErrReference) {
		return NewValidation(NonFieldErrors, "a referenced record does not exist")
	}
	return err
}

// DoesNotExist es el mensaje estándar para un id de referencia que no resuelve.
func DoesNotExist(id string) string {
	return fmt.Sprintf("invalid pk %q - object does not exist", id)
}
