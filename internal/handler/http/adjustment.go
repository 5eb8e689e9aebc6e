package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/adjustment"
	"github.com/chamcong-vn/attendance-backend-go/internal/handler/http/response"
	adjustmentservice "github.com/chamcong-vn/attendance-backend-go/internal/service/adjustment"
	"github.com/go-chi/chi/v5"
)

type AdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService *adjustmentservice.Service
}

func NewAdjustmentHandler(adjustmentService *adjustmentservice.Service) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

func (h *adjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Adjustment recorded", result)
}

func (h *adjustmentHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	result, err := h.adjustmentService.ListByUserAndPeriod(r.Context(), chi.URLParam(r, "id"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *adjustmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.adjustmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Adjustment deleted", nil)
}
