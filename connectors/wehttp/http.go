package wehttp

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter/counter"
)

//go:embed static/index.html
var static embed.FS

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

// WithoutTelemetry skips the otelhttp wrapper, leaving the bare router.
func WithoutTelemetry() HandlerOption {
	return func(service *httpService) {
		service.telemetry = ""
	}
}

func NewHandler(counterService counter.Service, options ...HandlerOption) http.Handler {
	service := &httpService{counter: counterService, telemetry: "wee-counter"}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(service.recoverer)

	r.NotFound(service.notFound())
	r.MethodNotAllowed(service.notFound())

	r.Get("/", service.getPage())

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/count", service.getCount())
		r.Post("/increment", service.increment())
	})

	if service.telemetry == "" {
		return r
	}

	return WithTelemetry(r, service.telemetry)
}

type httpService struct {
	log       *zerolog.Logger
	counter   counter.Service
	telemetry string
}

type countResource struct {
	Count int `json:"count"`
}

type errorResource struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func (service *httpService) serverError(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusInternalServerError, errorResource{Error: "Server error"})
}

func (service *httpService) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusNotFound, errorResource{Error: "Not found"})
	}
}

func (service *httpService) getPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := static.ReadFile("static/index.html")
		if err != nil {
			service.log.Error().Err(err).Msg("failed to load page")
			service.serverError(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	}
}

func (service *httpService) getCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := service.counter.Load(r.Context())
		if err != nil {
			service.log.Error().Err(err).Msg("failed to load counter")
			service.serverError(w, r)
			return
		}

		writeJSON(w, r, http.StatusOK, countResource{Count: state.Count})
	}
}

func (service *httpService) increment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := service.counter.Execute(r.Context(), counter.Increment{Amount: 1})
		if err != nil {
			service.log.Error().Err(err).Msg("failed to increment counter")
			service.serverError(w, r)
			return
		}

		writeJSON(w, r, http.StatusOK, countResource{Count: state.Count})
	}
}

// recoverer turns a handler panic into the generic server error response.
func (service *httpService) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			service.log.Error().Interface("panic", rvr).Str("method", r.Method).Str("path", r.URL.Path).Msg("handler panicked")
			service.serverError(w, r)
		}()

		next.ServeHTTP(w, r)
	})
}
