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

type BudgetHandler struct {
	budgetRepo services.BudgetRepository
}

func NewBudgetHandler(budgetRepo services.BudgetRepository) *BudgetHandler {
	return &BudgetHandler{budgetRepo: budgetRepo}
}

func (h *BudgetHandler) HandleGetBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	budgets, err := h.budgetRepo.FindByUserID(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to list budgets", "error", err)
		utils.SendJSONError(w, "Failed to load budgets", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, budgets, http.StatusOK)
}

func (h *BudgetHandler) HandleCreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var budget models.Budget
	if err := json.NewDecoder(r.Body).Decode(&budget); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	budget.ID = 0
	budget.UserID = userID
	budget.Category = validation.SanitizeText(budget.Category)

	if err := h.budgetRepo.Save(&budget); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to create budget", "error", err)
		utils.SendJSONError(w, "Failed to create budget", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, budget, http.StatusOK)
}

func (h *BudgetHandler) HandleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid budget id", http.StatusBadRequest)
		return
	}

	var patch models.BudgetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	budget, err := h.ownedBudget(userID, id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update budget")
		return
	}

	patch.Apply(budget)
	budget.Category = validation.SanitizeText(budget.Category)
	if err := h.budgetRepo.Update(budget); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to update budget", "error", err)
		utils.SendJSONError(w, "Failed to update budget", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, budget, http.StatusOK)
}

func (h *BudgetHandler) HandleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid budget id", http.StatusBadRequest)
		return
	}

	if _, err := h.ownedBudget(userID, id); err != nil {
		respondServiceError(w, r, err, "Failed to delete budget")
		return
	}
	if err := h.budgetRepo.DeleteByID(id); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to delete budget", "error", err)
		utils.SendJSONError(w, "Failed to delete budget", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, map[string]string{"message": "Budget deleted successfully"}, http.StatusOK)
}

func (h *BudgetHandler) ownedBudget(userID, id int64) (*models.Budget, error) {
	budget, err := h.budgetRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, services.ErrNotFound
	}
	if budget.UserID != userID {
		return nil, services.ErrForbidden
	}
	return budget, nil
}
