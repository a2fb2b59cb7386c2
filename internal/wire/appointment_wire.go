package wire

import (
	"github.com/adityaraj161616/Nirmalaya/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAppointment(r chi.Router, appointmentHandler *adaptor.AppointmentHandler) {
	r.Route("/api/appointments/{reference}", func(r chi.Router) {
		r.Get("/", appointmentHandler.GetAppointment)

		// Confirmation artifacts
		r.Get("/print", appointmentHandler.Print)
		r.Get("/download", appointmentHandler.Download)
	})
}
