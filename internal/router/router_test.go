package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/adapters/storage/sqlite"
	"vet-clinic/internal/platform/metrics"
	"vet-clinic/internal/ports/capabilities"
	"vet-clinic/internal/router"
)

const (
	staff      = "staff-1"
	privileged = "manager-1"
)

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	if opts.Store == nil {
		opts.Store = memory.New()
	}
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

type caller struct {
	userID string
	perms  []string
}

var (
	asStaff   = caller{userID: staff}
	asManager = caller{userID: privileged, perms: []string{capabilities.ViewAnimalAppointments}}
	anonymous = caller{}
)

type problemDoc struct {
	Status int `json:"status"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (p problemDoc) message(field string) string {
	for _, e := range p.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func TestHTTP_HealthAndAuth(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/health", anonymous, nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/animals", anonymous, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d body=%s", st, body)
	}

	st, _ = doReq(t, ts.URL, "GET", "/animals", asStaff, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 with identity, got %d", st)
	}
}

func TestHTTP_Breeds_NestedField(t *testing.T) {
	ts := newServer(t, router.Options{})

	canine := createID(t, ts.URL, "/species", map[string]any{"name": "Canine", "technician_ids": []string{}})

	// misma especie, datos idénticos: se reutiliza
	st, body := doReq(t, ts.URL, "POST", "/breeds/nested_field", asStaff, map[string]any{
		"name":    "Beagle",
		"species": map[string]any{"id": canine, "name": "Canine"},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, body)
	}
	var breed struct {
		Species struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"species"`
	}
	mustJSON(t, body, &breed)
	if breed.Species.ID != canine || breed.Species.Name != "Canine" {
		t.Fatalf("expected embedded Canine species, got %+v", breed.Species)
	}

	// misma identidad, nombre distinto: rechazado y sin tocar la especie
	st, body = doReq(t, ts.URL, "POST", "/breeds/nested_field", asStaff, map[string]any{
		"name":    "Poodle",
		"species": map[string]any{"id": canine, "name": "Canines"},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 on divergent species, got %d body=%s", st, body)
	}
	var p problemDoc
	mustJSON(t, body, &p)
	if p.message("species.name") == "" {
		t.Fatalf("expected error on species.name, got %s", body)
	}

	st, body = doReq(t, ts.URL, "GET", "/species/"+canine, asStaff, nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"name":"Canine"`) {
		t.Fatalf("species must be unchanged, got %d body=%s", st, body)
	}

	// sin identidad: se crea la especie
	st, body = doReq(t, ts.URL, "POST", "/breeds/nested_field", asStaff, map[string]any{
		"name":    "Siamese",
		"species": map[string]any{"name": "Feline"},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating species from payload, got %d body=%s", st, body)
	}

	// par (name, species) duplicado
	st, body = doReq(t, ts.URL, "POST", "/breeds/nested_field", asStaff, map[string]any{
		"name":    "Beagle",
		"species": map[string]any{"id": canine, "name": "Canine"},
	})
	mustJSON(t, body, &p)
	if st != http.StatusBadRequest || p.message("non_field_errors") != "the fields name, species must make a unique set" {
		t.Fatalf("expected unique-set error, got %d body=%s", st, body)
	}
}

func TestHTTP_Breeds_PKStrategies(t *testing.T) {
	ts := newServer(t, router.Options{})
	canine := createID(t, ts.URL, "/species", map[string]any{"name": "Canine", "technician_ids": []string{"tech-1"}})

	st, body := doReq(t, ts.URL, "POST", "/breeds/separate_pk", asStaff, map[string]any{
		"name":       "Beagle",
		"species_id": "6f1c2b1e-2f55-4b8e-9a55-7b8f3f0b1c11",
	})
	var p problemDoc
	mustJSON(t, body, &p)
	if st != http.StatusBadRequest || p.message("species_id") == "" {
		t.Fatalf("expected 400 on species_id, got %d body=%s", st, body)
	}

	st, body = doReq(t, ts.URL, "POST", "/breeds/separate_pk", asStaff, map[string]any{"name": "Beagle", "species_id": canine})
	if st != http.StatusCreated || !strings.Contains(string(body), `"technicians":["tech-1"]`) {
		t.Fatalf("expected 201 with expanded species, got %d body=%s", st, body)
	}

	st, body = doReq(t, ts.URL, "POST", "/breeds/writable_pk", asStaff, map[string]any{"name": "Poodle", "species": canine})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, body)
	}
	var brief map[string]any
	mustJSON(t, body, &brief)
	if _, ok := brief["species"]; ok {
		t.Fatalf("writable_pk must render {id, name} only, got %s", body)
	}

	// el mismo recurso leído por otra estrategia sí expande la especie
	st, body = doReq(t, ts.URL, "GET", "/breeds/nested_field/"+brief["id"].(string), asStaff, nil)
	if st != http.StatusOK || !strings.Contains(string(body), canine) {
		t.Fatalf("expected nested read, got %d body=%s", st, body)
	}
}

type clinic struct {
	client, species, breed, vet, animal string
}

func seedClinic(t *testing.T, baseURL string) clinic {
	t.Helper()
	var c clinic
	c.client = createID(t, baseURL, "/clients", map[string]any{
		"name": "Alice", "address_line_1": "1 Main St", "city": "Springfield",
		"state": "IL", "zip": "62701", "phone": "555-0100", "email": "alice@example.com",
	})
	c.species = createID(t, baseURL, "/species", map[string]any{"name": "Canine", "technician_ids": []string{}})
	c.breed = createID(t, baseURL, "/breeds/separate_pk", map[string]any{"name": "Beagle", "species_id": c.species})
	c.vet = createID(t, baseURL, "/veterinarians", map[string]any{"user_id": "dr-who"})
	c.animal = createID(t, baseURL, "/animals", map[string]any{
		"name": "Rex", "client_id": c.client, "species_id": c.species, "breed_id": c.breed,
		"approx_year_of_birth": 2019, "first_visit_date": "2024-02-29",
	})
	return c
}

func TestHTTP_Animals_AppointmentsNeedCapability(t *testing.T) {
	ts := newServer(t, router.Options{})
	c := seedClinic(t, ts.URL)

	soon := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	st, body := doReq(t, ts.URL, "POST", "/animals/"+c.animal+"/book_appointment", asStaff, map[string]any{
		"time": soon.Format(time.RFC3339), "veterinarian_id": c.vet,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 booking, got %d body=%s", st, body)
	}

	// sin capability: nunca aparece la clave appointments
	for _, path := range []string{"/animals", "/animals/" + c.animal} {
		st, body = doReq(t, ts.URL, "GET", path, asStaff, nil)
		if st != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, st)
		}
		if strings.Contains(string(body), "appointments") {
			t.Fatalf("GET %s leaked appointments: %s", path, body)
		}
	}

	st, body = doReq(t, ts.URL, "GET", "/animals/"+c.animal, asManager, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var detail struct {
		Client struct {
			Name string `json:"name"`
		} `json:"client"`
		Species struct {
			Name        string    `json:"name"`
			Technicians *[]string `json:"technicians"`
		} `json:"species"`
		Breed *struct {
			Name string `json:"name"`
		} `json:"breed"`
		FirstVisitDate string `json:"first_visit_date"`
		Appointments   []struct {
			Time         time.Time `json:"time"`
			Veterinarian string    `json:"veterinarian"`
		} `json:"appointments"`
	}
	mustJSON(t, body, &detail)
	if detail.Client.Name != "Alice" || detail.Breed == nil || detail.Breed.Name != "Beagle" {
		t.Fatalf("unexpected detail relations: %s", body)
	}
	// la especie del detalle es la representación completa, con técnicos
	if detail.Species.Name != "Canine" || detail.Species.Technicians == nil || len(*detail.Species.Technicians) != 0 {
		t.Fatalf("expected full species with technicians, got %s", body)
	}
	if detail.FirstVisitDate != "2024-02-29" {
		t.Fatalf("expected first_visit_date 2024-02-29, got %q", detail.FirstVisitDate)
	}
	if len(detail.Appointments) != 1 || detail.Appointments[0].Veterinarian != "dr-who" || !detail.Appointments[0].Time.Equal(soon) {
		t.Fatalf("expected one appointment with dr-who, got %s", body)
	}

	st, body = doReq(t, ts.URL, "GET", "/animals", asManager, nil)
	var list []struct {
		Client       string            `json:"client"`
		Species      string            `json:"species"`
		Appointments []json.RawMessage `json:"appointments"`
	}
	mustJSON(t, body, &list)
	if st != http.StatusOK || len(list) != 1 || list[0].Client != "Alice" || list[0].Species != "Canine" || len(list[0].Appointments) != 1 {
		t.Fatalf("unexpected privileged list: %d %s", st, body)
	}
}

func TestHTTP_Animals_Booking(t *testing.T) {
	ts := newServer(t, router.Options{})
	c := seedClinic(t, ts.URL)
	other := createID(t, ts.URL, "/animals", map[string]any{
		"name": "Fido", "client_id": c.client, "species_id": c.species, "approx_year_of_birth": 2020,
	})

	at := "2031-03-01T10:00:00Z"
	st, body := doReq(t, ts.URL, "POST", "/animals/"+c.animal+"/book_appointment", asStaff, map[string]any{"time": at, "veterinarian_id": c.vet})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, body)
	}
	var appt map[string]any
	mustJSON(t, body, &appt)
	if appt["animal"] != c.animal || appt["veterinarian"] != c.vet {
		t.Fatalf("unexpected appointment %s", body)
	}

	st, body = doReq(t, ts.URL, "POST", "/animals/"+other+"/book_appointment", asStaff, map[string]any{"time": at, "veterinarian_id": c.vet})
	var p problemDoc
	mustJSON(t, body, &p)
	if st != http.StatusBadRequest || p.message("non_field_errors") != "the fields time, veterinarian must make a unique set" {
		t.Fatalf("expected double-booking rejection, got %d body=%s", st, body)
	}

	st, _ = doReq(t, ts.URL, "POST", "/animals/0d4f5a8e-6c3b-4b59-9d54-2a1c0e9b7f10/book_appointment", asStaff, map[string]any{"time": at, "veterinarian_id": c.vet})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown animal, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/animals/not-a-uuid/book_appointment", asStaff, map[string]any{"time": at, "veterinarian_id": c.vet})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/animals/"+other+"/book_appointment", asStaff, map[string]any{"time": "tomorrow", "veterinarian_id": c.vet})
	mustJSON(t, body, &p)
	if st != http.StatusBadRequest || p.message("time") == "" {
		t.Fatalf("expected 400 on time, got %d body=%s", st, body)
	}
}

func TestHTTP_Animals_Validation(t *testing.T) {
	ts := newServer(t, router.Options{})
	c := seedClinic(t, ts.URL)
	feline := createID(t, ts.URL, "/species", map[string]any{"name": "Feline", "technician_ids": []string{}})

	st, body := doReq(t, ts.URL, "POST", "/animals", asStaff, map[string]any{
		"name": "Tom", "client_id": c.client, "species_id": feline, "breed_id": c.breed, "approx_year_of_birth": 2020,
	})
	var p problemDoc
	mustJSON(t, body, &p)
	if st != http.StatusBadRequest || p.message("breed_id") == "" {
		t.Fatalf("expected breed/species mismatch on breed_id, got %d body=%s", st, body)
	}

	// PATCH con breed_id null limpia la raza
	st, body = doReq(t, ts.URL, "PATCH", "/animals/"+c.animal, asStaff, map[string]any{"breed_id": nil})
	if st != http.StatusOK || !strings.Contains(string(body), `"breed":null`) {
		t.Fatalf("expected breed cleared, got %d body=%s", st, body)
	}

	// PUT exige todos los campos
	st, body = doReq(t, ts.URL, "PUT", "/animals/"+c.animal, asStaff, map[string]any{"name": "Rexy"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 on partial PUT, got %d body=%s", st, body)
	}
}

func TestHTTP_Deletes(t *testing.T) {
	checkDeletes(t, newServer(t, router.Options{}))
}

func TestHTTP_Deletes_SQLite(t *testing.T) {
	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ts := newServer(t, router.Options{Store: db})
	c := seedClinic(t, ts.URL)

	st, body := doReq(t, ts.URL, "DELETE", "/veterinarians/"+c.vet, asStaff, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 deleting unreferenced vet, got %d body=%s", st, body)
	}
	checkDeletesFrom(t, ts, c)
}

func checkDeletes(t *testing.T, ts *httptest.Server) {
	t.Helper()
	checkDeletesFrom(t, ts, seedClinic(t, ts.URL))
}

func checkDeletesFrom(t *testing.T, ts *httptest.Server, c clinic) {
	t.Helper()

	st, body := doReq(t, ts.URL, "DELETE", "/breeds/separate_pk/"+c.breed, asStaff, nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 deleting referenced breed, got %d body=%s", st, body)
	}

	st, body = doReq(t, ts.URL, "DELETE", "/species/"+c.species, asStaff, nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 deleting referenced species, got %d body=%s", st, body)
	}

	st, _ = doReq(t, ts.URL, "DELETE", "/clients/"+c.client, asStaff, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 deleting client, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/animals/"+c.animal, asStaff, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected animal removed with its client, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "DELETE", "/species/"+c.species, asStaff, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 once unreferenced, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/breeds/separate_pk/"+c.breed, asStaff, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected breed cascaded with species, got %d", st)
	}
}

func TestHTTP_MetricsAndDocs(t *testing.T) {
	ts := newServer(t, router.Options{Metrics: metrics.New()})

	st, _ := doReq(t, ts.URL, "POST", "/breeds/nested_field", asStaff, map[string]any{
		"name": "Beagle", "species": map[string]any{"name": "Canine"},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/metrics", anonymous, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 /metrics, got %d", st)
	}
	for _, want := range []string{
		`vetclinic_species_reconciliations_total{outcome="created"} 1`,
		`route="/breeds/nested_field`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("metrics missing %q", want)
		}
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", anonymous, nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/animals/{animalID}/book_appointment") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
	var doc struct {
		Paths map[string]map[string]struct {
			Summary string `json:"summary"`
		} `json:"paths"`
		Definitions map[string]struct {
			Properties map[string]struct {
				Ref string `json:"$ref"`
			} `json:"properties"`
		} `json:"definitions"`
	}
	mustJSON(t, body, &doc)
	// mismos textos que las anotaciones de los handlers
	for path, want := range map[string]string{
		"/species":                            "Crear especie",
		"/breeds/nested_field":                "Crear raza",
		"/veterinarians":                      "Registrar veterinario",
		"/animals":                            "Crear animal",
		"/animals/{animalID}/book_appointment": "Reservar turno",
	} {
		if got := doc.Paths[path]["post"].Summary; got != want {
			t.Fatalf("POST %s summary = %q, want %q", path, got, want)
		}
	}
	if ref := doc.Definitions["animals.animalDetailResponse"].Properties["species"].Ref; ref != "#/definitions/species.SpeciesResponse" {
		t.Fatalf("animal detail species documented as %q", ref)
	}
}

func createID(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, asStaff, payload)
	if st != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func mustJSON(t *testing.T, body []byte, dst any) {
	t.Helper()
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func doReq(t *testing.T, baseURL, method, path string, as caller, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as.userID != "" {
		req.Header.Set("X-Debug-User-ID", as.userID)
	}
	if len(as.perms) > 0 {
		req.Header.Set("X-Debug-Permissions", strings.Join(as.perms, ","))
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
