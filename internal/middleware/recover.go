package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/problem"
)

// Recover reemplaza a chimw.Recoverer: registra el panic con el logger del
// request y responde un problem 500 en lugar de texto plano.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context(), nil).Error("panic recovered", logger.Fields{
				"panic":  fmt.Sprint(rec),
				"method": r.Method,
				"path":   r.URL.Path,
				"stack":  string(debug.Stack()),
			})
			problem.Internal().WriteJSON(w)
		}()
		next.ServeHTTP(w, r)
	})
}
