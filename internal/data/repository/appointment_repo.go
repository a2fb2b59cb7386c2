package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"
	"github.com/adityaraj161616/Nirmalaya/pkg/database"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	// Create inserts the appointment and returns the stored row,
	// including the generated booking reference and timestamps. A
	// repeated insert for the same draft returns the already-stored
	// row instead of creating a duplicate.
	Create(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error)

	FindByReference(ctx context.Context, reference string) (*entity.Appointment, error)
	FindByDraftID(ctx context.Context, draftID uuid.UUID) (*entity.Appointment, error)
}

type appointmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

const appointmentColumns = `id, booking_reference, draft_id, full_name, email, phone,
		treatment_type, preferred_date, preferred_time, special_requests, status, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	stored := *appt

	// the store owns reference generation
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.BookingReference == "" {
		stored.BookingReference = utils.GenerateBookingReference()
	}
	if stored.Status == "" {
		stored.Status = entity.AppointmentStatusConfirmed
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	// the draft id doubles as an idempotency key: a retry after a
	// transient failure where the first insert actually committed
	// lands on the conflict path instead of creating a duplicate
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (draft_id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query,
		stored.ID,
		stored.BookingReference,
		stored.DraftID,
		stored.FullName,
		stored.Email,
		stored.Phone,
		stored.TreatmentType,
		stored.PreferredDate,
		stored.PreferredTime,
		stored.SpecialRequests,
		stored.Status,
		stored.CreatedAt,
		stored.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("draft_id", stored.DraftID.String()),
			zap.String("email", stored.Email),
		)
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		existing, err := r.FindByDraftID(ctx, stored.DraftID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("create appointment: conflict for draft %s but row not found", stored.DraftID.String())
		}
		r.log.Info("Appointment already stored for draft, returning existing row",
			zap.String("draft_id", stored.DraftID.String()),
			zap.String("booking_reference", existing.BookingReference),
		)
		return existing, nil
	}

	r.log.Info("Appointment created",
		zap.String("appointment_id", stored.ID.String()),
		zap.String("booking_reference", stored.BookingReference),
		zap.String("treatment_type", stored.TreatmentType),
		zap.String("preferred_date", stored.PreferredDate),
		zap.String("preferred_time", stored.PreferredTime),
	)

	return &stored, nil
}

func (r *appointmentRepository) FindByReference(ctx context.Context, reference string) (*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE booking_reference = $1
	`

	appt, err := r.scanOne(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		r.log.Error("Failed to find appointment by reference",
			zap.Error(err),
			zap.String("booking_reference", reference),
		)
		return nil, fmt.Errorf("find appointment by reference %s: %w", reference, err)
	}

	return appt, nil
}

func (r *appointmentRepository) FindByDraftID(ctx context.Context, draftID uuid.UUID) (*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE draft_id = $1
	`

	appt, err := r.scanOne(r.db.QueryRow(ctx, query, draftID))
	if err != nil {
		r.log.Error("Failed to find appointment by draft ID",
			zap.Error(err),
			zap.String("draft_id", draftID.String()),
		)
		return nil, fmt.Errorf("find appointment by draft ID %s: %w", draftID.String(), err)
	}

	return appt, nil
}

func (r *appointmentRepository) scanOne(row pgx.Row) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.BookingReference,
		&appt.DraftID,
		&appt.FullName,
		&appt.Email,
		&appt.Phone,
		&appt.TreatmentType,
		&appt.PreferredDate,
		&appt.PreferredTime,
		&appt.SpecialRequests,
		&appt.Status,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &appt, nil
}
