package wire

import (
	"github.com/adityaraj161616/Nirmalaya/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/booking", func(r chi.Router) {
		// Draft lifecycle
		r.Get("/draft", bookingHandler.GetDraft)
		r.Delete("/draft", bookingHandler.DiscardDraft)

		// Step 1: patient information
		r.Post("/step-1", bookingHandler.SavePatientInfo)

		// Step 2: treatment, doctor, date and time
		r.Patch("/step-2", bookingHandler.ApplySelection)
		r.Post("/step-2", bookingHandler.SaveTreatmentSelection)

		// Step 3: review and submit
		r.Get("/review", bookingHandler.Review)
		r.Post("/confirm", bookingHandler.Confirm)
	})
}
