package repository

import (
	"github.com/adityaraj161616/Nirmalaya/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Appointment AppointmentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Appointment: NewAppointmentRepository(db, log),
	}
}
