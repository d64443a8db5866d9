package store

import "context"

// Transactor ejecuta fn dentro de una transacción atómica.
// La transacción viaja en el ctx que recibe fn: los repositorios la toman de ahí.
// Si fn devuelve error se hace rollback y el error se propaga tal cual.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
