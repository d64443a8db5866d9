package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/httpjson"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/problem"
	"vet-clinic/internal/platform/validate"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, caps capabilities.Resolver) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc, caps))
		ar.Post("/", createAnimalHandler(svc, caps))
		ar.Get("/{animalID}", getAnimalHandler(svc, caps))
		ar.Put("/{animalID}", updateAnimalHandler(svc, caps, ActionUpdate))
		ar.Patch("/{animalID}", updateAnimalHandler(svc, caps, ActionPartialUpdate))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))

		// Acción de detalle: reservar turno para este animal.
		ar.Post("/{animalID}/book_appointment", bookAppointmentHandler(svc))
	})
}

// animalRequest: breed_id y first_visit_date se leen aparte para distinguir null de omitido.
type animalRequest struct {
	Name              *string `json:"name" validate:"omitempty,max=50"`
	ClientID          *string `json:"client_id" validate:"omitempty,uuid"`
	SpeciesID         *string `json:"species_id" validate:"omitempty,uuid"`
	ApproxYearOfBirth *int    `json:"approx_year_of_birth" validate:"omitempty,min=0,max=32767"`
}

type bookAppointmentRequest struct {
	Time           string `json:"time" validate:"required"`
	VeterinarianID string `json:"veterinarian_id" validate:"required,uuid"`
}

// Formas de lectura. Las variantes con turnos son tipos distintos para que la
// forma sin privilegios no pueda serializar turnos por accidente.

type animalListResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Client            string  `json:"client"`
	Species           string  `json:"species"`
	ApproxYearOfBirth int     `json:"approx_year_of_birth"`
	FirstVisitDate    *string `json:"first_visit_date"`
}

type animalListWithAppointmentsResponse struct {
	animalListResponse
	Appointments []appointmentBrief `json:"appointments"`
}

type animalDetailResponse struct {
	ID                string                  `json:"id"`
	Name              string                  `json:"name"`
	Client            clients.ClientResponse  `json:"client"`
	Species           species.SpeciesResponse `json:"species"`
	Breed             *breeds.BriefResponse   `json:"breed"`
	ApproxYearOfBirth int                     `json:"approx_year_of_birth"`
	FirstVisitDate    *string                 `json:"first_visit_date"`
}

type animalDetailWithAppointmentsResponse struct {
	animalDetailResponse
	Appointments []appointmentBrief `json:"appointments"`
}

type appointmentBrief struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	Veterinarian string    `json:"veterinarian"`
}

type appointmentResponse struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	Animal       string    `json:"animal"`
	Veterinarian string    `json:"veterinarian"`
}

// plan resuelve la capacidad una única vez por request.
func plan(r *http.Request, caps capabilities.Resolver, a Action) Plan {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || caps == nil {
		return Select(a, false)
	}
	allowed, err := caps.HasCapability(r.Context(), claims, capabilities.ViewAnimalAppointments)
	if err != nil {
		// sin respuesta del resolver, la forma sin turnos
		logger.FromContext(r.Context(), nil).Warn("capability check failed", logger.Fields{
			"err":        err,
			"capability": capabilities.ViewAnimalAppointments,
		})
		return Select(a, false)
	}
	return Select(a, allowed)
}

func listAnimalsHandler(svc *Service, caps capabilities.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		p := plan(r, caps, ActionList)

		items, err := svc.List(r.Context(), filter, p)
		if err != nil {
			problem.Write(w, r, err)
			return
		}

		if p.Shape.WithAppointments() {
			out := make([]animalListWithAppointmentsResponse, 0, len(items))
			for _, it := range items {
				out = append(out, animalListWithAppointmentsResponse{
					animalListResponse: toListResponse(it.Listed),
					Appointments:       toAppointmentBriefs(it.Appointments),
				})
			}
			httpjson.Write(w, http.StatusOK, out)
			return
		}

		out := make([]animalListResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toListResponse(it.Listed))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Crea un animal. Si el usuario tiene la capacidad `animals:view_appointments` la respuesta incluye `appointments` (ventana de ±30 días).
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Permissions header string false "Solo en modo dev, capacidades separadas por coma"
// @Param payload body animalRequest true "Animal"
// @Success 201 {object} animalDetailResponse
// @Failure 400 {object} problem.Details
// @Failure 401 {object} problem.Details
// @Router /animals [post]
func createAnimalHandler(svc *Service, caps capabilities.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeAnimal(r)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		p := plan(r, caps, ActionCreate)

		d, err := svc.Create(r.Context(), in, p)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, render(d, p))
	}
}

func getAnimalHandler(svc *Service, caps capabilities.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "animalID")
		if !ok {
			problem.Write(w, r, problem.NotFound("animal not found"))
			return
		}
		p := plan(r, caps, ActionRetrieve)

		d, err := svc.Get(r.Context(), id, p)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, render(d, p))
	}
}

func updateAnimalHandler(svc *Service, caps capabilities.Resolver, action Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "animalID")
		if !ok {
			problem.Write(w, r, problem.NotFound("animal not found"))
			return
		}

		in, err := decodeAnimal(r)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		if action == ActionUpdate {
			if err := requireFull(in); err != nil {
				problem.Write(w, r, err)
				return
			}
		}

		p := plan(r, caps, action)

		d, err := svc.Update(r.Context(), id, in, p)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, render(d, p))
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "animalID")
		if !ok {
			problem.Write(w, r, problem.NotFound("animal not found"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			problem.Write(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// bookAppointmentHandler godoc
// @Summary Reservar turno
// @Description Crea un turno para el animal. (time, veterinarian) y (time, animal) son únicos.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body bookAppointmentRequest true "Turno"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} problem.Details "validación / turno ya reservado"
// @Failure 404 {object} problem.Details
// @Router /animals/{animalID}/book_appointment [post]
func bookAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "animalID")
		if !ok {
			problem.Write(w, r, problem.NotFound("animal not found"))
			return
		}

		var req bookAppointmentRequest
		if err := httpjson.Decode(r, &req); err != nil {
			problem.Write(w, r, problem.DecodeError(err))
			return
		}
		if err := validate.Struct(req); err != nil {
			problem.Write(w, r, err)
			return
		}
		at, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Time))
		if err != nil {
			problem.Write(w, r, apperr.NewValidation("time", "must be an RFC 3339 datetime"))
			return
		}

		a, err := svc.BookAppointment(r.Context(), id, appointments.BookInput{
			Time:           at,
			VeterinarianID: req.VeterinarianID,
		})
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				problem.Write(w, r, problem.NotFound("animal not found"))
				return
			}
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, appointmentResponse{
			ID:           a.ID,
			Time:         a.Time,
			Animal:       a.AnimalID,
			Veterinarian: a.VeterinarianID,
		})
	}
}

func parseFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	page := httpjson.ParsePage(r)
	f := ListFilter{
		Name:   strings.TrimSpace(q.Get("name")),
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	v := &apperr.ValidationError{}
	for _, p := range []struct {
		key string
		dst *string
	}{
		{"client_id", &f.ClientID},
		{"species_id", &f.SpeciesID},
		{"breed_id", &f.BreedID},
	} {
		val := strings.TrimSpace(q.Get(p.key))
		if val == "" {
			continue
		}
		if !validate.UUID(val) {
			v.Add(p.key, "must be a valid UUID")
			continue
		}
		*p.dst = val
	}
	return f, v.OrNil()
}

// decodeAnimal lee el body en dos pasadas, igual que el PATCH de breeds.
func decodeAnimal(r *http.Request) (Input, error) {
	var raw map[string]json.RawMessage
	if err := httpjson.Decode(r, &raw); err != nil {
		return Input{}, problem.DecodeError(err)
	}

	v := &apperr.ValidationError{}
	for _, f := range []string{"name", "client_id", "species_id", "approx_year_of_birth"} {
		if msg, ok := raw[f]; ok && string(msg) == "null" {
			v.Add(f, "this field may not be null")
		}
	}
	if err := v.OrNil(); err != nil {
		return Input{}, err
	}

	var req animalRequest
	if err := httpjson.DecodeFields(raw, &req); err != nil {
		return Input{}, problem.DecodeError(err)
	}
	if err := validate.Struct(req); err != nil {
		return Input{}, err
	}

	in := Input{
		Name:              req.Name,
		ClientID:          req.ClientID,
		SpeciesID:         req.SpeciesID,
		ApproxYearOfBirth: req.ApproxYearOfBirth,
	}

	if msg, ok := raw["breed_id"]; ok {
		in.BreedID = Null[string]()
		if string(msg) != "null" {
			var s string
			if err := json.Unmarshal(msg, &s); err != nil || !validate.UUID(strings.TrimSpace(s)) {
				v.Add("breed_id", "must be a valid UUID or null")
			} else {
				in.BreedID = Set(s)
			}
		}
	}

	if msg, ok := raw["first_visit_date"]; ok {
		in.FirstVisitDate = Null[time.Time]()
		if string(msg) != "null" {
			var s string
			if err := json.Unmarshal(msg, &s); err != nil {
				v.Add("first_visit_date", "must be YYYY-MM-DD or null")
			} else if d, err := time.Parse(DateLayout, strings.TrimSpace(s)); err != nil {
				v.Add("first_visit_date", "must be YYYY-MM-DD or null")
			} else {
				in.FirstVisitDate = Set(d)
			}
		}
	}
	return in, v.OrNil()
}

func requireFull(in Input) error {
	v := &apperr.ValidationError{}
	if in.Name == nil {
		v.Add("name", "this field is required")
	}
	if in.ClientID == nil {
		v.Add("client_id", "this field is required")
	}
	if in.SpeciesID == nil {
		v.Add("species_id", "this field is required")
	}
	if in.ApproxYearOfBirth == nil {
		v.Add("approx_year_of_birth", "this field is required")
	}
	return v.OrNil()
}

// render elige la forma de detalle según el plan resuelto para el request.
func render(d Detail, p Plan) any {
	out := animalDetailResponse{
		ID:                d.ID,
		Name:              d.Name,
		Client:            clients.ToResponse(d.Client),
		Species:           species.ToResponse(d.Species),
		ApproxYearOfBirth: d.ApproxYearOfBirth,
		FirstVisitDate:    formatDate(d.FirstVisitDate),
	}
	if d.Breed != nil {
		b := breeds.ToBriefResponse(*d.Breed)
		out.Breed = &b
	}
	if p.Shape.WithAppointments() {
		return animalDetailWithAppointmentsResponse{
			animalDetailResponse: out,
			Appointments:         toAppointmentBriefs(d.Appointments),
		}
	}
	return out
}

func toListResponse(l Listed) animalListResponse {
	return animalListResponse{
		ID:                l.ID,
		Name:              l.Name,
		Client:            l.ClientName,
		Species:           l.SpeciesName,
		ApproxYearOfBirth: l.ApproxYearOfBirth,
		FirstVisitDate:    formatDate(l.FirstVisitDate),
	}
}

func toAppointmentBriefs(items []appointments.Scheduled) []appointmentBrief {
	out := make([]appointmentBrief, 0, len(items))
	for _, a := range items {
		out = append(out, appointmentBrief{ID: a.ID, Time: a.Time, Veterinarian: a.VeterinarianUserID})
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
