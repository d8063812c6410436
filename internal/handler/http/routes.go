package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.welcome)
	router.Get("/api/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
		r.Post("/api/contacts", h.submitContact)
		r.Get("/api/projects", h.listProjects)
		r.Get("/api/projects/{id}", h.getProject)
		r.Get("/api/qualifications", h.listQualifications)
		r.Get("/api/qualifications/{id}", h.getQualification)
	})

	// authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.me)

		// admin-only management
		r.Group(func(ar chi.Router) {
			ar.Use(h.requireAdmin)

			ar.Get("/api/users", h.listUsers)
			ar.Get("/api/users/{id}", h.getUser)
			ar.Put("/api/users/{id}", h.updateUser)
			ar.Delete("/api/users/{id}", h.deleteUser)
			ar.Delete("/api/users", h.deleteAllUsers)

			ar.Get("/api/contacts", h.listContacts)
			ar.Get("/api/contacts/{id}", h.getContact)
			ar.Put("/api/contacts/{id}", h.updateContact)
			ar.Delete("/api/contacts/{id}", h.deleteContact)
			ar.Delete("/api/contacts", h.deleteAllContacts)

			ar.Post("/api/projects", h.createProject)
			ar.Put("/api/projects/{id}", h.updateProject)
			ar.Delete("/api/projects/{id}", h.deleteProject)
			ar.Delete("/api/projects", h.deleteAllProjects)

			ar.Post("/api/qualifications", h.createQualification)
			ar.Put("/api/qualifications/{id}", h.updateQualification)
			ar.Delete("/api/qualifications/{id}", h.deleteQualification)
			ar.Delete("/api/qualifications", h.deleteAllQualifications)
		})
	})

	return router
}

// idFromRequest parses the {id} URL parameter as a positive int64.
func idFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
