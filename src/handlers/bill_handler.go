package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/security/validation"
	"github.com/0pain01/Financial-Foresight/src/services"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

type BillHandler struct {
	billRepo services.BillRepository
	insights services.InsightService
}

func NewBillHandler(billRepo services.BillRepository, insights services.InsightService) *BillHandler {
	return &BillHandler{billRepo: billRepo, insights: insights}
}

func (h *BillHandler) HandleGetBills(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	bills, err := h.billRepo.FindByUserID(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to list bills", "error", err)
		utils.SendJSONError(w, "Failed to load bills", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, bills, http.StatusOK)
}

func (h *BillHandler) HandleCreateBill(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var bill models.Bill
	if err := json.NewDecoder(r.Body).Decode(&bill); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	bill.ID = 0
	bill.UserID = userID
	bill.Name = validation.SanitizeText(bill.Name)
	if bill.Status == "" {
		bill.Status = models.BillStatusPending
	}

	if err := h.billRepo.Save(&bill); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to create bill", "error", err)
		utils.SendJSONError(w, "Failed to create bill", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, bill, http.StatusOK)
}

func (h *BillHandler) HandleUpdateBill(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid bill id", http.StatusBadRequest)
		return
	}

	var patch models.BillPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	bill, err := h.ownedBill(userID, id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update bill")
		return
	}

	patch.Apply(bill)
	bill.Name = validation.SanitizeText(bill.Name)
	if err := h.billRepo.Update(bill); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to update bill", "error", err)
		utils.SendJSONError(w, "Failed to update bill", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, bill, http.StatusOK)
}

func (h *BillHandler) HandleDeleteBill(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid bill id", http.StatusBadRequest)
		return
	}

	if _, err := h.ownedBill(userID, id); err != nil {
		respondServiceError(w, r, err, "Failed to delete bill")
		return
	}
	if err := h.billRepo.DeleteByID(id); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to delete bill", "error", err)
		utils.SendJSONError(w, "Failed to delete bill", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, map[string]string{"message": "Bill deleted successfully"}, http.StatusOK)
}

func (h *BillHandler) ownedBill(userID, id int64) (*models.Bill, error) {
	bill, err := h.billRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, services.ErrNotFound
	}
	if bill.UserID != userID {
		return nil, services.ErrForbidden
	}
	return bill, nil
}
