package http

import (
	"encoding/json"
	"net/http"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/contract"
	"github.com/chamcong-vn/attendance-backend-go/internal/handler/http/response"
	contractservice "github.com/chamcong-vn/attendance-backend-go/internal/service/contract"
	"github.com/go-chi/chi/v5"
)

type ContractHandler interface {
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type contractHandlerImpl struct {
	contractService *contractservice.Service
}

func NewContractHandler(contractService *contractservice.Service) ContractHandler {
	return &contractHandlerImpl{contractService: contractService}
}

func (h *contractHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.contractService.ListByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *contractHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")

	result, err := h.contractService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Contract created", result)
}

func (h *contractHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req contract.UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "contractID")

	result, err := h.contractService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *contractHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contractService.Delete(r.Context(), chi.URLParam(r, "contractID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contract deleted", nil)
}
