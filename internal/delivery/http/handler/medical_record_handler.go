package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/delivery/http/middleware"
	"clinic-management-backend/internal/usecase"
	"clinic-management-backend/pkg/response"
	"clinic-management-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MedicalRecordHandler struct {
	receptionUsecase usecase.ReceptionUsecase
	validator        *validator.CustomValidator
}

func NewMedicalRecordHandler(receptionUsecase usecase.ReceptionUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		receptionUsecase: receptionUsecase,
		validator:        validator,
	}
}

// Complete closes an appointment: status transition, medical record, and
// prescriptions in one request.
func (h *MedicalRecordHandler) Complete(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
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

	var req dto.CompleteAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.receptionUsecase.Complete(r.Context(), doctorID, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment is assigned to another doctor")
		case usecase.ErrAppointmentNotScheduled:
			response.UnprocessableEntity(w, "Appointment is no longer scheduled")
		case usecase.ErrDiagnosisRequired:
			response.UnprocessableEntity(w, "Diagnosis is required")
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Diagnosis template not found")
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", result)
}

func (h *MedicalRecordHandler) GetByAppointment(w http.ResponseWriter, r *http.Request) {
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

	record, err := h.receptionUsecase.GetRecordByAppointment(r.Context(), actorID, roleID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound, usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordAccessDenied:
			response.Forbidden(w, "Medical record does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

// GetMyRecords returns the calling patient's medical card.
func (h *MedicalRecordHandler) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	records, err := h.receptionUsecase.ListPatientRecords(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}

// GetPatientRecords lets doctors and admins read a patient's medical card.
func (h *MedicalRecordHandler) GetPatientRecords(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	records, err := h.receptionUsecase.ListPatientRecords(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
