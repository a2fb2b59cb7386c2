package wire

import (
	"github.com/adityaraj161616/Nirmalaya/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// Catalog is public and read-only
	r.Get("/api/treatments", catalogHandler.GetTreatments)
	r.Get("/api/treatments/{id}/doctors", catalogHandler.GetDoctorsForTreatment)
	r.Get("/api/doctors", catalogHandler.GetDoctors)
	r.Get("/api/slots", catalogHandler.GetTimeSlots)
}
