package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/usecase"
	"practice-management-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAppointmentUsecase struct {
	CreateFunc        func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetFunc           func(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	UpdateFunc        func(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteFunc        func(ctx context.Context, id int64) error
	ListByPatientFunc func(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error)
}

var _ usecase.AppointmentUsecase = (*mockAppointmentUsecase)(nil)

func (m *mockAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.CreateFunc(ctx, req)
}

func (m *mockAppointmentUsecase) Get(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockAppointmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockAppointmentUsecase) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockAppointmentUsecase) ListByPatient(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error) {
	return m.ListByPatientFunc(ctx, patientID)
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{
		CreateFunc: func(_ context.Context, _ *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentPatientMissing
		},
	}, validator.NewValidator())

	body := `{"patient_id": 9999, "provider_id": 1, "date_time": "2026-09-01T10:30:00Z", "description": "Checkup"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Referenced patient does not exist", decodeBody(t, rec)["detail"])
}

func TestCreateAppointmentSuccess(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{
		CreateFunc: func(_ context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{
				ID:          5,
				PatientID:   req.PatientID,
				ProviderID:  req.ProviderID,
				DateTime:    req.DateTime,
				Description: req.Description,
				Status:      "pending",
				CreatedAt:   time.Now().UTC(),
				UpdatedAt:   time.Now().UTC(),
			}, nil
		},
	}, validator.NewValidator())

	body := `{"patient_id": 1, "provider_id": 2, "date_time": "2026-09-01T10:30:00Z", "description": "Checkup"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, float64(5), got["id"])
	assert.Equal(t, "pending", got["status"])
}

func TestListPatientAppointments(t *testing.T) {
	h := NewAppointmentHandler(&mockAppointmentUsecase{
		ListByPatientFunc: func(_ context.Context, patientID int64) (*dto.AppointmentListResponse, error) {
			if patientID != 7 {
				return nil, usecase.ErrUserNotFound
			}
			return &dto.AppointmentListResponse{
				Appointments: []dto.AppointmentResponse{{ID: 1, PatientID: 7}},
				Total:        1,
			}, nil
		},
	}, validator.NewValidator())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/users/7/appointments", nil),
		map[string]string{"id": "7"})
	rec := httptest.NewRecorder()
	h.ListPatientAppointments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, float64(1), got["total"])
	require.Len(t, got["appointments"], 1)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/users/8/appointments", nil),
		map[string]string{"id": "8"})
	rec = httptest.NewRecorder()
	h.ListPatientAppointments(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["detail"])
}
