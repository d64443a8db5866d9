package veterinarians

import (
	"net/http"

	"vet-clinic/internal/platform/httpjson"
	"vet-clinic/internal/platform/problem"
	"vet-clinic/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/veterinarians", func(vr chi.Router) {
		vr.Get("/", listVeterinariansHandler(svc))
		vr.Post("/", createVeterinarianHandler(svc))
		vr.Get("/{vetID}", getVeterinarianHandler(svc))
		vr.Delete("/{vetID}", deleteVeterinarianHandler(svc))
	})
}

type createVeterinarianRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
}

type veterinarianResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

// createVeterinarianHandler godoc
// @Summary Registrar veterinario
// @Description Marca un usuario como veterinario. `user_id` es único.
// @Tags veterinarians
// @Accept json
// @Produce json
// @Param payload body createVeterinarianRequest true "Veterinario"
// @Success 201 {object} veterinarianResponse
// @Failure 400 {object} problem.Details
// @Router /veterinarians [post]
func createVeterinarianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVeterinarianRequest
		if err := httpjson.Decode(r, &req); err != nil {
			problem.Write(w, r, problem.DecodeError(err))
			return
		}
		if err := validate.Struct(req); err != nil {
			problem.Write(w, r, err)
			return
		}

		v, err := svc.Create(r.Context(), req.UserID)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toResponse(v))
	}
}

func listVeterinariansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := httpjson.ParsePage(r)
		items, err := svc.List(r.Context(), page.Limit, page.Offset)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		out := make([]veterinarianResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toResponse(v))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getVeterinarianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "vetID")
		if !ok {
			problem.Write(w, r, problem.NotFound("veterinarian not found"))
			return
		}
		v, err := svc.GetByID(r.Context(), id)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(v))
	}
}

func deleteVeterinarianHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "vetID")
		if !ok {
			problem.Write(w, r, problem.NotFound("veterinarian not found"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			problem.Write(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toResponse(v Veterinarian) veterinarianResponse {
	return veterinarianResponse{ID: v.ID, UserID: v.UserID}
}
