package species

import (
	"net/http"
	"strings"

	"vet-clinic/internal/platform/httpjson"
	"vet-clinic/internal/platform/problem"
	"vet-clinic/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/species", func(sr chi.Router) {
		sr.Get("/", listSpeciesHandler(svc))
		sr.Post("/", createSpeciesHandler(svc))
		sr.Get("/{speciesID}", getSpeciesHandler(svc))
		sr.Put("/{speciesID}", updateSpeciesHandler(svc, false))
		sr.Patch("/{speciesID}", updateSpeciesHandler(svc, true))
		sr.Delete("/{speciesID}", deleteSpeciesHandler(svc))
	})
}

// createSpeciesRequest: technician_ids es obligatorio (puede ser []).
type createSpeciesRequest struct {
	Name          string   `json:"name" validate:"required,max=50"`
	TechnicianIDs []string `json:"technician_ids" validate:"required,dive,required"`
}

type patchSpeciesRequest struct {
	Name          *string   `json:"name" validate:"omitempty,max=50"`
	TechnicianIDs *[]string `json:"technician_ids" validate:"omitempty,dive,required"`
}

// SpeciesResponse es la representación de lectura; las razas la embeben.
type SpeciesResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Technicians []string `json:"technicians"`
}

// createSpeciesHandler godoc
// @Summary Crear especie
// @Description Crea una especie. `technician_ids` es obligatorio; enviar `[]` para no asignar técnicos.
// @Tags species
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body createSpeciesRequest true "Especie"
// @Success 201 {object} SpeciesResponse
// @Failure 400 {object} problem.Details "validación / nombre duplicado"
// @Failure 401 {object} problem.Details
// @Router /species [post]
func createSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSpeciesRequest
		if err := httpjson.Decode(r, &req); err != nil {
			problem.Write(w, r, problem.DecodeError(err))
			return
		}
		if err := validate.Struct(req); err != nil {
			problem.Write(w, r, err)
			return
		}

		sp, err := svc.Create(r.Context(), CreateInput{Name: req.Name, TechnicianIDs: req.TechnicianIDs})
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, ToResponse(sp))
	}
}

func listSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := httpjson.ParsePage(r)
		items, err := svc.List(r.Context(), ListFilter{
			Name:   strings.TrimSpace(r.URL.Query().Get("name")),
			Limit:  page.Limit,
			Offset: page.Offset,
		})
		if err != nil {
			problem.Write(w, r, err)
			return
		}

		out := make([]SpeciesResponse, 0, len(items))
		for _, sp := range items {
			out = append(out, ToResponse(sp))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "speciesID")
		if !ok {
			problem.Write(w, r, problem.NotFound("species not found"))
			return
		}
		sp, err := svc.GetByID(r.Context(), id)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(sp))
	}
}

func updateSpeciesHandler(svc *Service, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "speciesID")
		if !ok {
			problem.Write(w, r, problem.NotFound("species not found"))
			return
		}

		var p Patch
		if partial {
			var req patchSpeciesRequest
			if err := httpjson.Decode(r, &req); err != nil {
				problem.Write(w, r, problem.DecodeError(err))
				return
			}
			if err := validate.Struct(req); err != nil {
				problem.Write(w, r, err)
				return
			}
			p = Patch{Name: req.Name, TechnicianIDs: req.TechnicianIDs}
		} else {
			var req createSpeciesRequest
			if err := httpjson.Decode(r, &req); err != nil {
				problem.Write(w, r, problem.DecodeError(err))
				return
			}
			if err := validate.Struct(req); err != nil {
				problem.Write(w, r, err)
				return
			}
			p = Patch{Name: &req.Name, TechnicianIDs: &req.TechnicianIDs}
		}

		sp, err := svc.Update(r.Context(), id, p)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(sp))
	}
}

func deleteSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "speciesID")
		if !ok {
			problem.Write(w, r, problem.NotFound("species not found"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			problem.Write(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(sp Species) SpeciesResponse {
	techs := sp.Technicians
	if techs == nil {
		techs = []string{}
	}
	return SpeciesResponse{ID: sp.ID, Name: sp.Name, Technicians: techs}
}
