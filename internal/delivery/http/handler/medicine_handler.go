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

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Create(r.Context(), adminID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medicine")
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

func (h *MedicineHandler) GetAllMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.medicineUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medicines")
		return
	}

	response.Success(w, http.StatusOK, "Medicines retrieved successfully", medicines)
}

func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	medicineID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	medicine, err := h.medicineUsecase.Get(r.Context(), medicineID)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to get medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

func (h *MedicineHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	medicineID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.Update(r.Context(), adminID, medicineID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to update medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

func (h *MedicineHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	medicineID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	if err := h.medicineUsecase.Delete(r.Context(), adminID, medicineID); err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		case usecase.ErrMedicineInUse:
			response.Conflict(w, "Medicine is referenced by prescriptions")
		default:
			response.InternalServerError(w, "Failed to delete medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}
