package breeds

import (
	"encoding/json"
	"net/http"
	"strings"

	"vet-clinic/internal/domain/apperr"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/platform/httpjson"
	"vet-clinic/internal/platform/problem"
	"vet-clinic/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta un grupo /breeds/<estrategia> por cada forma de escribir la especie.
// Las representaciones difieren a propósito entre grupos.
func RegisterRoutes(r chi.Router, svc *Service) {
	for _, st := range []Strategy{NestedField, SeparatePK, WritablePK} {
		r.Route("/breeds/"+string(st), func(br chi.Router) {
			br.Get("/", listBreedsHandler(svc, st))
			br.Post("/", createBreedHandler(svc, st))
			br.Get("/{breedID}", getBreedHandler(svc, st))
			br.Put("/{breedID}", updateBreedHandler(svc, st, false))
			br.Patch("/{breedID}", updateBreedHandler(svc, st, true))
			br.Delete("/{breedID}", deleteBreedHandler(svc))
		})
	}
}

type embeddedSpeciesRequest struct {
	ID   *string `json:"id" validate:"omitempty,uuid"`
	Name string  `json:"name" validate:"required,max=50"`
}

// nestedBreedRequest: estrategia A.
type nestedBreedRequest struct {
	Name    *string                 `json:"name" validate:"omitempty,max=50"`
	Species *embeddedSpeciesRequest `json:"species"`
}

// separatePKBreedRequest: estrategia B. "species" es de solo lectura y se ignora.
type separatePKBreedRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=50"`
	SpeciesID *string `json:"species_id" validate:"omitempty,uuid"`
}

// writablePKBreedRequest: estrategia C.
type writablePKBreedRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=50"`
	Species *string `json:"species" validate:"omitempty,uuid"`
}

type breedResponse struct {
	ID      string                   `json:"id"`
	Name    string                   `json:"name"`
	Species *species.SpeciesResponse `json:"species,omitempty"`
}

// BriefResponse es la forma {id, name} que embebe el detalle de animales.
type BriefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// createBreedHandler godoc
// @Summary Crear raza
// @Description Crea una raza. En `nested_field` la especie va embebida: si trae `id` y existe, todos sus campos deben coincidir (si no, 400 nombrando el sub-campo); si no existe se crea. En `separate_pk` se envía `species_id`; en `writable_pk`, `species` con el id.
// @Tags breeds
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param strategy path string true "nested_field | separate_pk | writable_pk"
// @Param payload body nestedBreedRequest true "Raza (forma según estrategia)"
// @Success 201 {object} breedResponse
// @Failure 400 {object} problem.Details "validación / especie divergente / par (name, species) duplicado"
// @Failure 401 {object} problem.Details
// @Router /breeds/{strategy} [post]
func createBreedHandler(svc *Service, st Strategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeInput(r, st, false)
		if err != nil {
			problem.Write(w, r, err)
			return
		}

		v, err := svc.Create(r.Context(), st, in)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toResponse(v, st))
	}
}

func listBreedsHandler(svc *Service, st Strategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := httpjson.ParsePage(r)
		filter := ListFilter{
			Name:   strings.TrimSpace(r.URL.Query().Get("name")),
			Limit:  page.Limit,
			Offset: page.Offset,
		}
		if sid := strings.TrimSpace(r.URL.Query().Get("species_id")); sid != "" {
			if !validate.UUID(sid) {
				problem.Write(w, r, apperr.NewValidation("species_id", "must be a valid UUID"))
				return
			}
			filter.SpeciesID = sid
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			problem.Write(w, r, err)
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toResponse(v, st))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getBreedHandler(svc *Service, st Strategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "breedID")
		if !ok {
			problem.Write(w, r, problem.NotFound("breed not found"))
			return
		}
		v, err := svc.Get(r.Context(), id)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(v, st))
	}
}

func updateBreedHandler(svc *Service, st Strategy, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "breedID")
		if !ok {
			problem.Write(w, r, problem.NotFound("breed not found"))
			return
		}

		in, err := decodeInput(r, st, partial)
		if err != nil {
			problem.Write(w, r, err)
			return
		}

		v, err := svc.Update(r.Context(), id, in)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(v, st))
	}
}

func deleteBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "breedID")
		if !ok {
			problem.Write(w, r, problem.NotFound("breed not found"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			problem.Write(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeInput lee el payload según la estrategia. Para distinguir "campo omitido"
// de "campo en null" decodificamos primero a map y luego al struct de la estrategia.
func decodeInput(r *http.Request, st Strategy, partial bool) (Input, error) {
	var raw map[string]json.RawMessage
	if err := httpjson.Decode(r, &raw); err != nil {
		return Input{}, problem.DecodeError(err)
	}

	field := st.SpeciesField()
	v := &apperr.ValidationError{}
	if !partial {
		for _, f := range []string{"name", field} {
			if _, ok := raw[f]; !ok {
				v.Add(f, "this field is required")
			}
		}
	}
	for _, f := range []string{"name", field} {
		if msg, ok := raw[f]; ok && string(msg) == "null" {
			v.Add(f, "this field may not be null")
		}
	}
	if err := v.OrNil(); err != nil {
		return Input{}, err
	}

	var in Input
	switch st {
	case NestedField:
		var req nestedBreedRequest
		if err := unmarshalStrict(raw, &req); err != nil {
			return Input{}, err
		}
		in.Name = req.Name
		if req.Species != nil {
			in.Species = EmbeddedSpecies{ID: req.Species.ID, Name: req.Species.Name}
		}
	case SeparatePK:
		var req separatePKBreedRequest
		if err := unmarshalStrict(raw, &req); err != nil {
			return Input{}, err
		}
		in.Name = req.Name
		if req.SpeciesID != nil {
			in.Species = SpeciesRef{Field: field, ID: *req.SpeciesID}
		}
	case WritablePK:
		var req writablePKBreedRequest
		if err := unmarshalStrict(raw, &req); err != nil {
			return Input{}, err
		}
		in.Name = req.Name
		if req.Species != nil {
			in.Species = SpeciesRef{Field: field, ID: *req.Species}
		}
	}
	return in, nil
}

// unmarshalStrict decodifica y valida formatos (uuid, longitudes).
func unmarshalStrict(raw map[string]json.RawMessage, dst any) error {
	if err := httpjson.DecodeFields(raw, dst); err != nil {
		return problem.DecodeError(err)
	}
	return validate.Struct(dst)
}

func toResponse(v View, st Strategy) breedResponse {
	out := breedResponse{ID: v.ID, Name: v.Name}
	if st.ExpandsSpecies() {
		sp := species.ToResponse(v.Species)
		out.Species = &sp
	}
	return out
}

func ToBriefResponse(b Breed) BriefResponse {
	return BriefResponse{ID: b.ID, Name: b.Name}
}
