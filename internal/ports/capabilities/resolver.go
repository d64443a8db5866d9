package capabilities

import (
	"context"

	"vet-clinic/internal/ports/auth"
)

// ViewAnimalAppointments habilita la proyección de animales con turnos embebidos.
const ViewAnimalAppointments = "animals:view_appointments"

// Resolver decide si el caller tiene una capability. Se evalúa una vez por request.
type Resolver interface {
	HasCapability(ctx context.Context, claims auth.Claims, capability string) (bool, error)
}
