package animals

import "time"

// Action es la operación HTTP sobre el recurso animals.
type Action string

const (
	ActionList          Action = "list"
	ActionRetrieve      Action = "retrieve"
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
)

// Shape es la proyección de lectura.
type Shape int

const (
	ShapeList Shape = iota
	ShapeDetail
	ShapeListWithAppointments
	ShapeDetailWithAppointments
)

// WithAppointments indica si la forma incluye turnos.
func (s Shape) WithAppointments() bool {
	return s == ShapeListWithAppointments || s == ShapeDetailWithAppointments
}

// Prefetch es el conjunto de relaciones a cargar además de cliente y especie.
type Prefetch uint8

const (
	PrefetchBreed Prefetch = 1 << iota
	PrefetchAppointments
)

func (p Prefetch) Has(f Prefetch) bool {
	return p&f != 0
}

// Plan se resuelve una vez por request y no cambia después.
type Plan struct {
	Shape    Shape
	Prefetch Prefetch
}

// AppointmentWindow es el radio de la ventana de turnos alrededor de "ahora".
const AppointmentWindow = 30 * 24 * time.Hour

type planKey struct {
	action     Action
	privileged bool
}

var plans = map[planKey]Plan{
	{ActionList, false}: {Shape: ShapeList},
	{ActionList, true}:  {Shape: ShapeListWithAppointments, Prefetch: PrefetchAppointments},

	{ActionRetrieve, false}:      {Shape: ShapeDetail, Prefetch: PrefetchBreed},
	{ActionRetrieve, true}:       {Shape: ShapeDetailWithAppointments, Prefetch: PrefetchBreed | PrefetchAppointments},
	{ActionCreate, false}:        {Shape: ShapeDetail, Prefetch: PrefetchBreed},
	{ActionCreate, true}:         {Shape: ShapeDetailWithAppointments, Prefetch: PrefetchBreed | PrefetchAppointments},
	{ActionUpdate, false}:        {Shape: ShapeDetail, Prefetch: PrefetchBreed},
	{ActionUpdate, true}:         {Shape: ShapeDetailWithAppointments, Prefetch: PrefetchBreed | PrefetchAppointments},
	{ActionPartialUpdate, false}: {Shape: ShapeDetail, Prefetch: PrefetchBreed},
	{ActionPartialUpdate, true}:  {Shape: ShapeDetailWithAppointments, Prefetch: PrefetchBreed | PrefetchAppointments},
}

// Select devuelve el plan para (acción, capacidad). Una acción desconocida cae en
// la forma de detalle sin privilegios.
func Select(a Action, privileged bool) Plan {
	if p, ok := plans[planKey{a, privileged}]; ok {
		return p
	}
	return Plan{Shape: ShapeDetail, Prefetch: PrefetchBreed}
}
