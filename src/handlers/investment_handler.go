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

type InvestmentHandler struct {
	investmentRepo services.InvestmentRepository
	insights       services.InsightService
}

func NewInvestmentHandler(investmentRepo services.InvestmentRepository, insights services.InsightService) *InvestmentHandler {
	return &InvestmentHandler{investmentRepo: investmentRepo, insights: insights}
}

func (h *InvestmentHandler) HandleGetInvestments(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	investments, err := h.investmentRepo.FindByUserID(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to list investments", "error", err)
		utils.SendJSONError(w, "Failed to load investments", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, investments, http.StatusOK)
}

func (h *InvestmentHandler) HandleCreateInvestment(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var inv models.Investment
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	inv.ID = 0
	inv.UserID = userID
	inv.Name = validation.SanitizeText(inv.Name)
	inv.Symbol = validation.SanitizeText(inv.Symbol)

	if err := h.investmentRepo.Save(&inv); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to create investment", "error", err)
		utils.SendJSONError(w, "Failed to create investment", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, inv, http.StatusOK)
}

func (h *InvestmentHandler) HandleUpdateInvestment(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid investment id", http.StatusBadRequest)
		return
	}

	var patch models.InvestmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	inv, err := h.ownedInvestment(userID, id)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update investment")
		return
	}

	patch.Apply(inv)
	inv.Name = validation.SanitizeText(inv.Name)
	inv.Symbol = validation.SanitizeText(inv.Symbol)
	if err := h.investmentRepo.Update(inv); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to update investment", "error", err)
		utils.SendJSONError(w, "Failed to update investment", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, inv, http.StatusOK)
}

func (h *InvestmentHandler) HandleDeleteInvestment(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid investment id", http.StatusBadRequest)
		return
	}

	if _, err := h.ownedInvestment(userID, id); err != nil {
		respondServiceError(w, r, err, "Failed to delete investment")
		return
	}
	if err := h.investmentRepo.DeleteByID(id); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to delete investment", "error", err)
		utils.SendJSONError(w, "Failed to delete investment", http.StatusInternalServerError)
		return
	}
	h.insights.InvalidateUserCache(userID)
	utils.SendJSONResponse(w, map[string]string{"message": "Investment deleted successfully"}, http.StatusOK)
}

func (h *InvestmentHandler) ownedInvestment(userID, id int64) (*models.Investment, error) {
	inv, err := h.investmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, services.ErrNotFound
	}
	if inv.UserID != userID {
		return nil, services.ErrForbidden
	}
	return inv, nil
}
