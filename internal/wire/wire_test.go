package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adityaraj161616/Nirmalaya/internal/adaptor"
	"github.com/adityaraj161616/Nirmalaya/internal/data/draft"
	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"
	"github.com/adityaraj161616/Nirmalaya/internal/data/repository"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// in-memory stand-in for the appointments table
type memAppointmentRepo struct {
	created []*entity.Appointment
}

func (m *memAppointmentRepo) Create(_ context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	for _, a := range m.created {
		if a.DraftID == appt.DraftID {
			return a, nil
		}
	}
	stored := *appt
	stored.ID = uuid.New()
	stored.BookingReference = utils.GenerateBookingReference()
	stored.Status = entity.AppointmentStatusConfirmed
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.created = append(m.created, &stored)
	return &stored, nil
}

func (m *memAppointmentRepo) FindByReference(_ context.Context, reference string) (*entity.Appointment, error) {
	for _, a := range m.created {
		if a.BookingReference == reference {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAppointmentRepo) FindByDraftID(_ context.Context, draftID uuid.UUID) (*entity.Appointment, error) {
	for _, a := range m.created {
		if a.DraftID == draftID {
			return a, nil
		}
	}
	return nil, nil
}

type apiResponse struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type testAPI struct {
	server *httptest.Server
	client *http.Client
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	config := &utils.Config{
		App: utils.AppConfig{Name: "niramaya-wellness", Port: "0"},
		Email: utils.EmailConfig{
			FromEmail:       "bookings@niramaya.com",
			FromName:        "Niramaya Wellness",
			OperationsEmail: "ops@niramaya.com",
			ContactPhone:    "+91 98765 43210",
			ContactEmail:    "hello@niramaya.com",
		},
		Booking: utils.BookingConfig{DraftTTLHours: 24},
	}

	repo := &repository.Repository{Appointment: &memAppointmentRepo{}}
	app := Wiring(repo, draft.NewMemoryStore(), config, zap.NewNop())

	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testAPI{
		server: server,
		client: &http.Client{Jar: jar},
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) (*http.Response, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func validStep1Body() map[string]string {
	return map[string]string{
		"first_name": "Asha",
		"last_name":  "Rao",
		"email":      "asha.rao@example.com",
		"phone":      "+91 98765 43210",
		"age":        "34",
		"gender":     "female",
	}
}

func validStep2Body() map[string]string {
	return map[string]string{
		"treatment": "abhyanga",
		"doctor":    "dr-sharma",
		"date":      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		"time":      "10:00 AM",
	}
}

func redirectOf(t *testing.T, body apiResponse) string {
	t.Helper()
	var data map[string]string
	require.NoError(t, json.Unmarshal(body.Data, &data))
	return data["redirect"]
}

func TestStepGuardsWithoutDraft(t *testing.T) {
	api := newTestAPI(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/booking/draft"},
		{http.MethodPost, "/api/booking/step-2"},
		{http.MethodPatch, "/api/booking/step-2"},
		{http.MethodGet, "/api/booking/review"},
		{http.MethodPost, "/api/booking/confirm"},
	} {
		resp, body := api.do(t, route.method, route.path, map[string]string{})
		assert.Equal(t, http.StatusConflict, resp.StatusCode, "%s %s", route.method, route.path)
		assert.Equal(t, "/book/step-1", redirectOf(t, body), "%s %s", route.method, route.path)
	}
}

func TestStepOneMintsDraftCookie(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(t, http.MethodPost, "/api/booking/step-1", validStep1Body())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == adaptor.DraftCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "step 1 must set the draft cookie")
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 24*60*60, cookie.MaxAge)
}

func TestStepOneValidationFailure(t *testing.T) {
	api := newTestAPI(t)

	body := validStep1Body()
	body["email"] = "not-an-email"
	body["age"] = "200"

	resp, parsed := api.do(t, http.MethodPost, "/api/booking/step-1", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please enter a valid email", parsed.Errors["Email"])
	assert.Equal(t, "Please enter a valid age", parsed.Errors["Age"])

	// a rejected submit must not mint a draft
	resp, _ = api.do(t, http.MethodGet, "/api/booking/draft", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBookingFlowEndToEnd(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(t, http.MethodPost, "/api/booking/step-1", validStep1Body())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(t, http.MethodPost, "/api/booking/step-2", validStep2Body())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, review := api.do(t, http.MethodGet, "/api/booking/review", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(review.Data, &summary))
	assert.Equal(t, "Abhyanga Massage", summary["treatment_name"])
	assert.Equal(t, "Dr. Priya Sharma", summary["doctor_name"])
	assert.Equal(t, "₹9,600", summary["price_label"])

	resp, confirmed := api.do(t, http.MethodPost, "/api/booking/confirm", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var appt map[string]any
	require.NoError(t, json.Unmarshal(confirmed.Data, &appt))
	reference, _ := appt["booking_reference"].(string)
	require.NotEmpty(t, reference)
	assert.Equal(t, "Asha Rao", appt["full_name"])
	assert.Equal(t, "confirmed", appt["status"])

	// the draft and its cookie are gone, the wizard starts over
	resp, _ = api.do(t, http.MethodGet, "/api/booking/review", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// the finalized record is reachable by reference
	resp, lookup := api.do(t, http.MethodGet, "/api/appointments/"+reference, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var found map[string]any
	require.NoError(t, json.Unmarshal(lookup.Data, &found))
	assert.Equal(t, reference, found["booking_reference"])
}

func TestAppointmentArtifacts(t *testing.T) {
	api := newTestAPI(t)

	_, _ = api.do(t, http.MethodPost, "/api/booking/step-1", validStep1Body())
	_, _ = api.do(t, http.MethodPost, "/api/booking/step-2", validStep2Body())
	_, confirmed := api.do(t, http.MethodPost, "/api/booking/confirm", nil)

	var appt map[string]any
	require.NoError(t, json.Unmarshal(confirmed.Data, &appt))
	reference := appt["booking_reference"].(string)

	resp, err := api.client.Get(api.server.URL + "/api/appointments/" + reference + "/download")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t,
		fmt.Sprintf("attachment; filename=%q", "Niramaya_Appointment_"+reference+".txt"),
		resp.Header.Get("Content-Disposition"))

	resp, err = api.client.Get(api.server.URL + "/api/appointments/" + reference + "/print")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
}

func TestAppointmentNotFound(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(t, http.MethodGet, "/api/appointments/NIR-ZZZZZZZZ", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodGet, "/api/treatments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var treatments []map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &treatments))
	assert.Len(t, treatments, 4)

	resp, body = api.do(t, http.MethodGet, "/api/treatments/shirodhara/doctors", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doctors []map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, "dr-patel", doctors[0]["id"])

	resp, _ = api.do(t, http.MethodGet, "/api/treatments/acupuncture/doctors", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = api.do(t, http.MethodGet, "/api/slots", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var slots []string
	require.NoError(t, json.Unmarshal(body.Data, &slots))
	assert.Len(t, slots, 8)
}

func TestNotifyEndpoint(t *testing.T) {
	api := newTestAPI(t)

	// stub sender is active without a SendGrid key, so both sends succeed
	resp, body := api.do(t, http.MethodPost, "/api/notify/appointment", map[string]string{
		"full_name":         "Asha Rao",
		"email":             "asha.rao@example.com",
		"phone":             "+91 98765 43210",
		"treatment_type":    "Abhyanga Massage",
		"preferred_date":    "2026-09-01",
		"preferred_time":    "10:00 AM",
		"booking_reference": "NIR-ABCD2345",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sent map[string]bool
	require.NoError(t, json.Unmarshal(body.Data, &sent))
	assert.True(t, sent["customer_sent"])
	assert.True(t, sent["operator_sent"])

	resp, parsed := api.do(t, http.MethodPost, "/api/notify/appointment", map[string]string{
		"full_name": "Asha Rao",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, parsed.Errors, "Email")
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI(t)

	resp, err := api.client.Get(api.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
