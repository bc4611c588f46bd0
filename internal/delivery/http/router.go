package http

import (
	"net/http"

	"clinic-management-backend/internal/delivery/http/handler"
	"clinic-management-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                   *mux.Router
	authHandler              *handler.AuthHandler
	appointmentHandler       *handler.AppointmentHandler
	availabilityHandler      *handler.AvailabilityHandler
	medicalRecordHandler     *handler.MedicalRecordHandler
	doctorHandler            *handler.DoctorHandler
	patientHandler           *handler.PatientHandler
	medicineHandler          *handler.MedicineHandler
	diagnosisTemplateHandler *handler.DiagnosisTemplateHandler
	auditLogHandler          *handler.AuditLogHandler
	authMiddleware           *middleware.AuthMiddleware
	corsMiddleware           *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	medicineHandler *handler.MedicineHandler,
	diagnosisTemplateHandler *handler.DiagnosisTemplateHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                   mux.NewRouter(),
		authHandler:              authHandler,
		appointmentHandler:       appointmentHandler,
		availabilityHandler:      availabilityHandler,
		medicalRecordHandler:     medicalRecordHandler,
		doctorHandler:            doctorHandler,
		patientHandler:           patientHandler,
		medicineHandler:          medicineHandler,
		diagnosisTemplateHandler: diagnosisTemplateHandler,
		auditLogHandler:          auditLogHandler,
		authMiddleware:           authMiddleware,
		corsMiddleware:           corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Shared routes (any authenticated user)
	shared := api.PathPrefix("").Subrouter()
	shared.Use(r.authMiddleware.Authenticate)
	shared.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	shared.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	shared.HandleFunc("/doctors/{id}/slots", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)
	shared.HandleFunc("/medicines", r.medicineHandler.GetAllMedicines).Methods(http.MethodGet)
	shared.HandleFunc("/medicines/{id}", r.medicineHandler.GetMedicine).Methods(http.MethodGet)
	shared.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	shared.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	shared.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	shared.HandleFunc("/appointments/{id}/medical-record", r.medicalRecordHandler.GetByAppointment).Methods(http.MethodGet)

	// Patient routes
	patient := api.PathPrefix("").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)
	patient.HandleFunc("/medical-records", r.medicalRecordHandler.GetMyRecords).Methods(http.MethodGet)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.appointmentHandler.CreateByDoctor).Methods(http.MethodPost)
	doctor.HandleFunc("/appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/complete", r.medicalRecordHandler.Complete).Methods(http.MethodPost)
	doctor.HandleFunc("/profile", r.doctorHandler.UpdateMyProfile).Methods(http.MethodPut)
	doctor.HandleFunc("/templates", r.diagnosisTemplateHandler.CreateTemplate).Methods(http.MethodPost)
	doctor.HandleFunc("/templates", r.diagnosisTemplateHandler.GetMyTemplates).Methods(http.MethodGet)
	doctor.HandleFunc("/templates/{id}", r.diagnosisTemplateHandler.DeleteTemplate).Methods(http.MethodDelete)

	// Staff routes (admin or doctor)
	staff := api.PathPrefix("/patients").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireAdminOrDoctor)
	staff.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	staff.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	staff.HandleFunc("/{id}/medical-records", r.medicalRecordHandler.GetPatientRecords).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/medicines", r.medicineHandler.CreateMedicine).Methods(http.MethodPost)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.UpdateMedicine).Methods(http.MethodPut)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.DeleteMedicine).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
