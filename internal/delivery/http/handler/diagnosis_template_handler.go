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

type DiagnosisTemplateHandler struct {
	templateUsecase usecase.DiagnosisTemplateUsecase
	validator       *validator.CustomValidator
}

func NewDiagnosisTemplateHandler(templateUsecase usecase.DiagnosisTemplateUsecase, validator *validator.CustomValidator) *DiagnosisTemplateHandler {
	return &DiagnosisTemplateHandler{
		templateUsecase: templateUsecase,
		validator:       validator,
	}
}

func (h *DiagnosisTemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDiagnosisTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.templateUsecase.Create(r.Context(), doctorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create diagnosis template")
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis template created successfully", template)
}

func (h *DiagnosisTemplateHandler) GetMyTemplates(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	templates, err := h.templateUsecase.ListMine(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get diagnosis templates")
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis templates retrieved successfully", templates)
}

func (h *DiagnosisTemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	templateID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	if err := h.templateUsecase.Delete(r.Context(), doctorID, templateID); err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Diagnosis template not found")
		default:
			response.InternalServerError(w, "Failed to delete diagnosis template")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis template deleted successfully", nil)
}
