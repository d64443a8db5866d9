package animals

import "time"

// SetClock fija el reloj usado para la ventana de turnos.
func SetClock(s *Service, now func() time.Time) { s.now = now }
