package clients

import (
	"net/http"
	"strings"

	"vet-clinic/internal/platform/httpjson"
	"vet-clinic/internal/platform/problem"
	"vet-clinic/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(svc))
		cr.Post("/", createClientHandler(svc))
		cr.Get("/{clientID}", getClientHandler(svc))
		cr.Put("/{clientID}", updateClientHandler(svc, false))
		cr.Patch("/{clientID}", updateClientHandler(svc, true))
		cr.Delete("/{clientID}", deleteClientHandler(svc))
	})
}

type clientRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	AddressLine1 string `json:"address_line_1" validate:"required,max=50"`
	AddressLine2 string `json:"address_line_2" validate:"max=50"`
	City         string `json:"city" validate:"required,max=50"`
	State        string `json:"state" validate:"required,len=2"`
	Zip          string `json:"zip" validate:"required,max=10"`
	Phone        string `json:"phone" validate:"required,max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type clientPatchRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	AddressLine1 *string `json:"address_line_1" validate:"omitempty,max=50"`
	AddressLine2 *string `json:"address_line_2" validate:"omitempty,max=50"`
	City         *string `json:"city" validate:"omitempty,max=50"`
	State        *string `json:"state" validate:"omitempty,len=2"`
	Zip          *string `json:"zip" validate:"omitempty,max=10"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

// ClientResponse también se embebe en el detalle de animales.
type ClientResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

func (req clientRequest) patch() Patch {
	return Patch{
		Name:         &req.Name,
		AddressLine1: &req.AddressLine1,
		AddressLine2: &req.AddressLine2,
		City:         &req.City,
		State:        &req.State,
		Zip:          &req.Zip,
		Phone:        &req.Phone,
		Email:        &req.Email,
	}
}

func (req clientPatchRequest) patch() Patch {
	return Patch(req)
}

func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientRequest
		if err := httpjson.Decode(r, &req); err != nil {
			problem.Write(w, r, problem.DecodeError(err))
			return
		}
		if err := validate.Struct(req); err != nil {
			problem.Write(w, r, err)
			return
		}

		c, err := svc.Create(r.Context(), req.patch())
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, ToResponse(c))
	}
}

func listClientsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]ClientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, ToResponse(c))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "clientID")
		if !ok {
			problem.Write(w, r, problem.NotFound("client not found"))
			return
		}
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(c))
	}
}

// updateClientHandler sirve PUT (todos los campos) y PATCH (solo los enviados).
func updateClientHandler(svc *Service, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "clientID")
		if !ok {
			problem.Write(w, r, problem.NotFound("client not found"))
			return
		}

		var p Patch
		if partial {
			var req clientPatchRequest
			if err := httpjson.Decode(r, &req); err != nil {
				problem.Write(w, r, problem.DecodeError(err))
				return
			}
			if err := validate.Struct(req); err != nil {
				problem.Write(w, r, err)
				return
			}
			p = req.patch()
		} else {
			var req clientRequest
			if err := httpjson.Decode(r, &req); err != nil {
				problem.Write(w, r, problem.DecodeError(err))
				return
			}
			if err := validate.Struct(req); err != nil {
				problem.Write(w, r, err)
				return
			}
			p = req.patch()
		}

		c, err := svc.Update(r.Context(), id, p)
		if err != nil {
			problem.Write(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(c))
	}
}

func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpjson.IDParam(r, "clientID")
		if !ok {
			problem.Write(w, r, problem.NotFound("client not found"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			problem.Write(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ToResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		City:         c.City,
		State:        c.State,
		Zip:          c.Zip,
		Phone:        c.Phone,
		Email:        c.Email,
	}
}
