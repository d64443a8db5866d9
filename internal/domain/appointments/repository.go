package appointments

import "context"

type Repository interface {
	// Create devuelve *apperr.ConflictError con [time veterinarian] o [time animal].
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	// ListWindow devuelve los turnos de esos animales dentro de w, ordenados por time.
	ListWindow(ctx context.Context, animalIDs []string, w Window) ([]Scheduled, error)
}
