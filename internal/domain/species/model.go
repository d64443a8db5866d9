package species

// Species es única por nombre y tiene un conjunto (sin orden ni duplicados) de técnicos asignados.
type Species struct {
	ID   string
	Name string

	// Technicians son identidades de usuario del sistema de identidad.
	Technicians []string
}
