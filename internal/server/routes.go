package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"dri_index/pkg/errcodes"
	"dri_index/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router, adminToken string) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler(s.getHealth))

		r.Get("/indicators", handler(s.getIndicators))

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", handler(s.getCompanies))
			r.Post("/", handler(s.postCompany))
			r.Get("/{id}", handler(s.getCompany))
			r.Put("/{id}", handler(s.putCompany))
			r.Delete("/{id}", handler(s.deleteCompany))
		})

		r.Get("/badge/{id}", handler(s.getBadge))

		r.Post("/chat", handler(s.postChat))

		r.Post("/feedback", handler(s.postFeedback))
		r.With(requireAdmin(adminToken)).Get("/feedback", handler(s.getFeedback))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}

// requireAdmin guards listing endpoints behind a static bearer token. An
// empty configured token disables the endpoint entirely.
func requireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" || !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				reply.Error(r.Context(), w, failure.NewUnauthorizedError(
					"invalid admin token",
					failure.WithCode(errcodes.Unauthorized),
				))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
