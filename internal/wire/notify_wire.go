package wire

import (
	"github.com/adityaraj161616/Nirmalaya/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNotify(r chi.Router, notifyHandler *adaptor.NotifyHandler) {
	// Called after the appointment row is stored; persist-then-notify
	r.Post("/api/notify/appointment", notifyHandler.SendAppointmentEmails)
}
