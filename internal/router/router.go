package router

import (
	"net/http"

	"vet-clinic/internal/adapters/capabilities/claims"
	"vet-clinic/internal/adapters/storage"
	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/species"
	"vet-clinic/internal/domain/veterinarians"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
	"vet-clinic/internal/ports/auth"
	"vet-clinic/internal/ports/capabilities"

	_ "vet-clinic/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger       logger.Logger
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Capabilities por defecto: solo los permisos del token.
	Capabilities capabilities.Resolver

	// Store por defecto: in-memory.
	Store storage.Store

	// Metrics opcional; si es nil no se expone /metrics.
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	st := opts.Store
	if st == nil {
		st = memory.New()
	}
	caps := opts.Capabilities
	if caps == nil {
		caps = claims.Resolver{}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	apptsSvc := appointments.NewService(st, st.Appointments(), st.Veterinarians())
	breedsSvc := breeds.NewService(st, st.Breeds(), st.Species())
	if opts.Metrics != nil {
		breedsSvc.OnReconcile = func(o breeds.Outcome) { opts.Metrics.ObserveReconcile(string(o)) }
	}
	animalsSvc := animals.NewService(st.Animals(), animals.Deps{
		Tx:           st,
		Clients:      st.Clients(),
		Species:      st.Species(),
		Breeds:       st.Breeds(),
		Appointments: apptsSvc,
	})

	// Rutas por módulo; todas exigen identidad.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireClaims)

		clients.RegisterRoutes(r, clients.NewService(st.Clients()))
		species.RegisterRoutes(r, species.NewService(st.Species()))
		breeds.RegisterRoutes(r, breedsSvc)
		veterinarians.RegisterRoutes(r, veterinarians.NewService(st.Veterinarians()))
		animals.RegisterRoutes(r, animalsSvc, caps)
	})

	return r
}
