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

type IncomeHandler struct {
	incomeRepo services.IncomeRepository
	insights   services.InsightService
}

func NewIncomeHandler(incomeRepo services.IncomeRepository, insights services.InsightService) *IncomeHandler {
	return &IncomeHandler{incomeRepo: incomeRepo, insights: insights}
}

func (h *IncomeHandler) HandleGetIncomes(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	incomes, err := h.incomeRepo.FindByUserID(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to list incomes", "error", err)
		utils.SendJSONError(w, "Failed to load incomes", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, incomes, http.StatusOK)
}

func (h *IncomeHandler) HandleCreateIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var income models.Income
	if err := json.NewDecoder(r.Body).Decode(&income); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	income.ID = 0
	income.UserID = userID
	income.Source = validation.SanitizeText(income.Source)

	if err := h.incomeRepo.Save(&income); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to create income", "error", err)
		utils.SendJSONError(w, "Failed to create income", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, income, http.StatusOK)
}

func (h *IncomeHandler) HandleUpdateIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid income id", http.StatusBadRequest)
		return
	}

	var patch models.IncomePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	income, err := h.ownedIncome(userID, id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update income")
		return
	}

	patch.Apply(income)
	income.Source = validation.SanitizeText(income.Source)
	if err := h.incomeRepo.Update(income); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to update income", "error", err)
		utils.SendJSONError(w, "Failed to update income", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, income, http.StatusOK)
}

func (h *IncomeHandler) HandleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid income id", http.StatusBadRequest)
		return
	}

	if _, err := h.ownedIncome(userID, id); err != nil {
		respondServiceError(w, r, err, "Failed to delete income")
		return
	}
	if err := h.incomeRepo.DeleteByID(id); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to delete income", "error", err)
		utils.SendJSONError(w, "Failed to delete income", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, map[string]string{"message": "Income deleted successfully"}, http.StatusOK)
}

func (h *IncomeHandler) ownedIncome(userID, id int64) (*models.Income, error) {
	income, err := h.incomeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, services.ErrNotFound
	}
	if income.UserID != userID {
		return nil, services.ErrForbidden
	}
	return income, nil
}
