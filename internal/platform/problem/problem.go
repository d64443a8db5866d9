// Package problem renders errors as RFC 9457 problem documents.
package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/platform/logger"
)

const typeBase = "https://vet-clinic.local/errors/"

type Details struct {
	Type     string              `json:"type"`
	Title    string              `json:"title"`
	Status   int                 `json:"status"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   []apperr.FieldError `json:"errors,omitempty"`
}

func (p *Details) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

func (p *Details) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func New(status int, slug, title, detail string) *Details {
	return &Details{
		Type:   typeBase + slug,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func Unauthorized() *Details {
	return New(http.StatusUnauthorized, "unauthorized", "Unauthorized", "authentication required")
}

func NotFound(detail string) *Details {
	return New(http.StatusNotFound, "not-found", "Not Found", detail)
}

func InvalidJSON(err error) *Details {
	return New(http.StatusBadRequest, "invalid-json", "Invalid JSON", err.Error())
}

func Internal() *Details {
	return New(http.StatusInternalServerError, "internal", "Internal Server Error", "internal error")
}

// FromError mapea los tipos de apperr; lo desconocido es 500.
func FromError(err error) *Details {
	var p *Details
	if errors.As(err, &p) {
		return p
	}

	var v *apperr.ValidationError
	if errors.As(err, &v) {
		d := New(http.StatusBadRequest, "validation", "Validation Failed", "one or more fields are invalid")
		d.Errors = v.Fields
		return d
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return NotFound("not found")
	case errors.Is(err, apperr.ErrProtected):
		return New(http.StatusConflict, "protected", "Conflict", err.Error())
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrReference):
		// Los servicios deberían haberlo convertido con apperr.FromStore.
		d := New(http.StatusBadRequest, "validation", "Validation Failed", err.Error())
		d.Errors = []apperr.FieldError{{Field: apperr.NonFieldErrors, Message: err.Error()}}
		return d
	}
	return Internal()
}

// Write renderiza err; los 5xx se registran con el logger del request.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	p := FromError(err)
	if p.Status >= http.StatusInternalServerError {
		logger.FromContext(r.Context(), nil).Error("request failed", logger.Fields{
			"err":    err,
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}
	cp := *p
	cp.Instance = r.URL.Path
	cp.WriteJSON(w)
}

// DecodeError clasifica un error de lectura del body: errores de tipo ya vienen
// como ValidationError por campo; el resto es JSON inválido.
func DecodeError(err error) error {
	var v *apperr.ValidationError
	if errors.As(err, &v) {
		return v
	}
	return InvalidJSON(err)
}
