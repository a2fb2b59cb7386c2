package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var appointmentRowColumns = []string{
	"id", "booking_reference", "draft_id", "full_name", "email", "phone",
	"treatment_type", "preferred_date", "preferred_time", "special_requests",
	"status", "created_at", "updated_at",
}

func newAppointment(draftID uuid.UUID) *entity.Appointment {
	return &entity.Appointment{
		DraftID:         draftID,
		FullName:        "Asha Rao",
		Email:           "asha.rao@example.com",
		Phone:           "+91 98765 43210",
		TreatmentType:   "Abhyanga Massage",
		PreferredDate:   "2026-09-01",
		PreferredTime:   "10:00 AM",
		SpecialRequests: "Age: 34, Gender: female, Preferred Doctor: Dr. Priya Sharma",
	}
}

func TestCreateAppointment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAppointmentRepository(mock, zap.NewNop())
	draftID := uuid.New()

	mock.ExpectExec("INSERT INTO appointments").
		WithArgs(
			pgxmock.AnyArg(), // generated id
			pgxmock.AnyArg(), // generated reference
			draftID,
			"Asha Rao",
			"asha.rao@example.com",
			"+91 98765 43210",
			"Abhyanga Massage",
			"2026-09-01",
			"10:00 AM",
			"Age: 34, Gender: female, Preferred Doctor: Dr. Priya Sharma",
			entity.AppointmentStatusConfirmed,
			pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	stored, err := repo.Create(context.Background(), newAppointment(draftID))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.True(t, strings.HasPrefix(stored.BookingReference, "NIR-"))
	assert.Len(t, stored.BookingReference, 12)
	assert.NotContainsf(t, stored.BookingReference[4:], "0", "reference must avoid ambiguous characters")
	assert.NotContains(t, stored.BookingReference[4:], "O")
	assert.NotContains(t, stored.BookingReference[4:], "I")
	assert.NotContains(t, stored.BookingReference[4:], "1")
	assert.Equal(t, entity.AppointmentStatusConfirmed, stored.Status)
	assert.False(t, stored.CreatedAt.IsZero())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentIdempotentOnDraftConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAppointmentRepository(mock, zap.NewNop())
	draftID := uuid.New()
	existingID := uuid.New()
	createdAt := time.Now().Add(-time.Minute)

	mock.ExpectExec("INSERT INTO appointments").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs(draftID).
		WillReturnRows(pgxmock.NewRows(appointmentRowColumns).AddRow(
			existingID, "NIR-ABCD2345", draftID,
			"Asha Rao", "asha.rao@example.com", "+91 98765 43210",
			"Abhyanga Massage", "2026-09-01", "10:00 AM",
			"Age: 34, Gender: female, Preferred Doctor: Dr. Priya Sharma",
			entity.AppointmentStatusConfirmed, createdAt, createdAt,
		))

	stored, err := repo.Create(context.Background(), newAppointment(draftID))
	require.NoError(t, err)

	// the retry lands on the row the first attempt committed
	assert.Equal(t, existingID, stored.ID)
	assert.Equal(t, "NIR-ABCD2345", stored.BookingReference)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAppointmentRepository(mock, zap.NewNop())
	id := uuid.New()
	draftID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs("NIR-ABCD2345").
		WillReturnRows(pgxmock.NewRows(appointmentRowColumns).AddRow(
			id, "NIR-ABCD2345", draftID,
			"Asha Rao", "asha.rao@example.com", "+91 98765 43210",
			"Shirodhara Therapy", "2026-09-01", "2:00 PM", "",
			entity.AppointmentStatusConfirmed, now, now,
		))

	appt, err := repo.FindByReference(context.Background(), "NIR-ABCD2345")
	require.NoError(t, err)
	require.NotNil(t, appt)
	assert.Equal(t, "Shirodhara Therapy", appt.TreatmentType)
	assert.Equal(t, "2:00 PM", appt.PreferredTime)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByReferenceAbsent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAppointmentRepository(mock, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs("NIR-ZZZZZZZZ").
		WillReturnRows(pgxmock.NewRows(appointmentRowColumns))

	appt, err := repo.FindByReference(context.Background(), "NIR-ZZZZZZZZ")
	require.NoError(t, err)
	assert.Nil(t, appt)

	require.NoError(t, mock.ExpectationsWereMet())
}
