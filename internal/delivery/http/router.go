package http

import (
	"net/http"

	"practice-management-api/internal/delivery/http/handler"
	"practice-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	userHandler           *handler.UserHandler
	appointmentHandler    *handler.AppointmentHandler
	messageHandler        *handler.MessageHandler
	medicalRecordHandler  *handler.MedicalRecordHandler
	prescriptionHandler   *handler.PrescriptionHandler
	billingHandler        *handler.BillingHandler
	insuranceClaimHandler *handler.InsuranceClaimHandler
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
	recoveryMiddleware    *middleware.RecoveryMiddleware
	staticDir             string
}

func NewRouter(
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	messageHandler *handler.MessageHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	billingHandler *handler.BillingHandler,
	insuranceClaimHandler *handler.InsuranceClaimHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
	staticDir string,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		userHandler:           userHandler,
		appointmentHandler:    appointmentHandler,
		messageHandler:        messageHandler,
		medicalRecordHandler:  medicalRecordHandler,
		prescriptionHandler:   prescriptionHandler,
		billingHandler:        billingHandler,
		insuranceClaimHandler: insuranceClaimHandler,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
		recoveryMiddleware:    recoveryMiddleware,
		staticDir:             staticDir,
	}
}

func (r *Router) Setup() http.Handler {
	// Health check lives outside the API prefix and never touches the store.
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Users
	api.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Per-user relationship reads
	api.HandleFunc("/users/{id}/appointments", r.appointmentHandler.ListPatientAppointments).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/messages/sent", r.messageHandler.ListSentMessages).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/messages/received", r.messageHandler.ListReceivedMessages).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/medical_records", r.medicalRecordHandler.ListPatientMedicalRecords).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/prescriptions", r.prescriptionHandler.ListPatientPrescriptions).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/billing", r.billingHandler.ListPatientBilling).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/insurance_claims", r.insuranceClaimHandler.ListPatientInsuranceClaims).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Messages (immutable: create and read only)
	api.HandleFunc("/messages", r.messageHandler.CreateMessage).Methods(http.MethodPost)
	api.HandleFunc("/messages/{id}", r.messageHandler.GetMessage).Methods(http.MethodGet)

	// Medical records
	api.HandleFunc("/medical_records", r.medicalRecordHandler.CreateMedicalRecord).Methods(http.MethodPost)
	api.HandleFunc("/medical_records/{id}", r.medicalRecordHandler.GetMedicalRecord).Methods(http.MethodGet)

	// Prescriptions
	api.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)

	// Billing. Insurance claim routes are registered first so the literal
	// segment is not captured by /billing/{id}.
	api.HandleFunc("/billing/insurance_claims", r.insuranceClaimHandler.CreateInsuranceClaim).Methods(http.MethodPost)
	api.HandleFunc("/billing/insurance_claims/{id}", r.insuranceClaimHandler.GetInsuranceClaim).Methods(http.MethodGet)
	api.HandleFunc("/billing", r.billingHandler.CreateBilling).Methods(http.MethodPost)
	api.HandleFunc("/billing/{id}", r.billingHandler.GetBilling).Methods(http.MethodGet)

	// Optional SPA hosting for a prebuilt frontend bundle.
	if r.staticDir != "" {
		r.router.PathPrefix("/").Handler(NewSPAHandler(r.staticDir))
	}

	// mux only runs Use-middleware on matched routes, which would leave
	// preflights (405) and unknown paths (404) outside the chain. Wrapping
	// the router keeps CORS, logging and recovery on every response.
	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.loggingMiddleware.Handle(h)
	h = r.recoveryMiddleware.Handle(h)

	return h
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
