package appointments

import "time"

// Appointment no admite doble reserva: (time, veterinarian) y (time, animal) son únicos.
type Appointment struct {
	ID             string
	Time           time.Time
	AnimalID       string
	VeterinarianID string
}

// Scheduled es un turno con la identidad de usuario del veterinario ya resuelta.
type Scheduled struct {
	Appointment
	VeterinarianUserID string
}

// Window es un intervalo cerrado [From, To].
type Window struct {
	From time.Time
	To   time.Time
}

// WindowAround devuelve [now-d, now+d].
func WindowAround(now time.Time, d time.Duration) Window {
	return Window{From: now.Add(-d), To: now.Add(d)}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// Normalize lleva el instante a UTC con precisión de segundos, que es lo que guarda el store.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
