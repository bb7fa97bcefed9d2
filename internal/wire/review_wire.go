package wire

import (
	"business-directory/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /reviews - One review per user and business
	r.Post("/reviews", reviewHandler.CreateReview)

	r.Route("/reviews/{id:[0-9]+}", func(r chi.Router) {
		r.Get("/", reviewHandler.GetReview)
		r.Put("/", reviewHandler.UpdateReview)
		r.Delete("/", reviewHandler.DeleteReview)
	})

	// GET /users/{id}/reviews - All reviews written by one user
	r.Get("/users/{id:[0-9]+}/reviews", reviewHandler.GetUserReviews)
}
