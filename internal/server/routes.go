package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"plate_appraiser/internal/domain/service/appraisal"
	"plate_appraiser/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/plates", func(r chi.Router) {
				r.Post("/valuation", handler(s.postV1PlateValuation))
				r.Get("/format", handler(s.getV1PlateFormat))
				r.Get("/parse", handler(s.getV1PlateParse))
			})

			r.Post("/phone-tails/valuation", handler(s.postV1TailValuation))

			r.Get("/regions", handler(s.getV1Regions))

			r.Route("/keypad", func(r chi.Router) {
				r.Get("/", handler(s.getV1Keypad))
				r.Post("/press", handler(s.postV1Keypad(appraisal.KeypadPress)))
				r.Post("/delete", handler(s.postV1Keypad(appraisal.KeypadDelete)))
				r.Post("/confirm", handler(s.postV1Keypad(appraisal.KeypadConfirm)))
				r.Post("/focus", handler(s.postV1Keypad(appraisal.KeypadFocus)))
				r.Post("/skip", handler(s.postV1Keypad(appraisal.KeypadSkip)))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
