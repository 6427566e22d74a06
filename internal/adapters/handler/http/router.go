package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(squadHandler *SquadHandler, pollHandler *PollHandler, restaurantHandler *RestaurantHandler, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("foodsquad api")) //nolint:errcheck
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSecret))

		r.Route("/squads", func(r chi.Router) {
			r.Post("/", squadHandler.CreateSquad)
			r.Get("/my", squadHandler.ListMySquads)
			r.Get("/{id}", squadHandler.GetSquad)
			r.Post("/{id}/session/start", squadHandler.StartSession)
			r.Post("/{id}/session/vote", squadHandler.Vote)
			r.Post("/{id}/session/finalize", squadHandler.FinalizeDecision)
			r.Post("/{id}/session/roulette", squadHandler.FoodRoulette)
		})

		r.Route("/polls", func(r chi.Router) {
			r.Post("/", pollHandler.CreatePoll)
			r.Get("/{id}", pollHandler.GetPoll)
			r.Post("/{id}/vote", pollHandler.VotePoll)
			r.Post("/{id}/resolve", pollHandler.ResolvePoll)
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/nearby", restaurantHandler.GetNearby)
		})
	})

	return r
}
