// Package httpjson concentra el writeJSON que antes estaba duplicado por módulo,
// más el decode y la paginación comunes a todos los handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"vet-clinic/internal/domain/apperr"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBody = 1 << 20

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var ErrEmptyBody = errors.New("request body is empty")

// Decode lee un objeto JSON del body (máx. 1MB).
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.NewValidation(typeErr.Field, fmt.Sprintf("expected %s", typeErr.Type.String()))
		}
		return err
	}
	return nil
}

// DecodeFields vuelca al struct un objeto ya leído como map (para distinguir
// omitido de null). Un RawMessage inválido se devuelve como error.
func DecodeFields(raw map[string]json.RawMessage, dst any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.NewValidation(typeErr.Field, fmt.Sprintf("expected %s", typeErr.Type.String()))
		}
		return err
	}
	return nil
}

// Page es la ventana limit/offset de un listado.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage aplica los mismos topes que el listado de eventos: 1..200, default 50.
func ParsePage(r *http.Request) Page {
	p := Page{Limit: DefaultLimit}
	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
			p.Limit = n
		}
	}
	if v := strings.TrimSpace(q.Get("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Offset = n
		}
	}
	return p
}

// IDParam lee un id de la ruta; false si no es un UUID (el handler responde 404).
func IDParam(r *http.Request, name string) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, name))
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}
