package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/delivery/http/middleware"
	"clinic-management-backend/internal/service"
	"clinic-management-backend/internal/usecase"
	"clinic-management-backend/pkg/response"
	"clinic-management-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateByPatient(r.Context(), patientID, &req)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) CreateByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentByDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateByDoctor(r.Context(), doctorID, &req)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// writeCreateError maps booking failures: policy violations are 422,
// collisions are 409.
func (h *AppointmentHandler) writeCreateError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrInvalidTimestamp:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrDoctorSlotTaken:
		response.Conflict(w, "Doctor already has an appointment at this time")
	case usecase.ErrPatientSlotTaken:
		response.Conflict(w, "You already have an appointment at this time")
	case service.ErrSlotInPast,
		service.ErrSlotOnWeekend,
		service.ErrSlotOutsideWorkingHours,
		service.ErrSlotDuringLunch,
		service.ErrSlotNotOnBoundary:
		response.UnprocessableEntity(w, err.Error())
	default:
		response.InternalServerError(w, "Failed to create appointment")
	}
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListForPatient(r.Context(), patientID, listRequestFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListForDoctor(r.Context(), doctorID, listRequestFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	actorID, roleID, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), actorID, roleID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actorID, roleID, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), actorID, roleID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentNotScheduled:
			response.UnprocessableEntity(w, "Appointment is no longer scheduled")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, roleID, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), actorID, roleID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentNotScheduled:
			response.UnprocessableEntity(w, "Only scheduled appointments can be deleted")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func actorFromContext(r *http.Request) (uuid.UUID, int, bool) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, 0, false
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, 0, false
	}
	return actorID, roleID, true
}

func listRequestFromQuery(r *http.Request) *dto.ListAppointmentsRequest {
	q := r.URL.Query()
	return &dto.ListAppointmentsRequest{
		StartAt: q.Get("start_at"),
		EndAt:   q.Get("end_at"),
		Status:  q.Get("status"),
	}
}
