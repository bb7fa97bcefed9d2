package wire

import (
	"business-directory/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBusiness(r chi.Router, businessHandler *adaptor.BusinessHandler) {
	// POST /businesses - Register a new business
	r.Post("/businesses", businessHandler.CreateBusiness)

	// GET /businesses?offset=&limit= - Paginated business listing
	r.Get("/businesses", businessHandler.GetBusinesses)

	r.Route("/businesses/{id:[0-9]+}", func(r chi.Router) {
		r.Get("/", businessHandler.GetBusiness)
		r.Put("/", businessHandler.UpdateBusiness)

		// DELETE also removes every review of the business
		r.Delete("/", businessHandler.DeleteBusiness)
	})

	// GET /owners/{id}/businesses - All businesses of one owner
	r.Get("/owners/{id:[0-9]+}/businesses", businessHandler.GetOwnerBusinesses)
}
