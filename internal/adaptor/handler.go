package adaptor

import (
	"github.com/adityaraj161616/Nirmalaya/internal/notify"
	"github.com/adityaraj161616/Nirmalaya/internal/usecase"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking     *BookingHandler
	Catalog     *CatalogHandler
	Appointment *AppointmentHandler
	Notify      *NotifyHandler
}

func NewHandler(service *usecase.Service, dispatcher *notify.Dispatcher, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Booking:     NewBookingHandler(service.Booking, config, log),
		Catalog:     NewCatalogHandler(service.Catalog, log),
		Appointment: NewAppointmentHandler(service.Booking, config, log),
		Notify:      NewNotifyHandler(dispatcher, log),
	}
}
