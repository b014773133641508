package handlers

import (
	"net/http"

	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/services"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

// InsightsHandler serves the derived read-side payloads: dashboard summary,
// spending insights and the two projection reports.
type InsightsHandler struct {
	insightService services.InsightService
}

func NewInsightsHandler(insightService services.InsightService) *InsightsHandler {
	return &InsightsHandler{insightService: insightService}
}

func (h *InsightsHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	summary, err := h.insightService.Dashboard(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to build dashboard summary", "error", err)
		utils.SendJSONError(w, "Failed to build dashboard summary", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, summary, http.StatusOK)
}

func (h *InsightsHandler) HandleGetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	result, err := h.insightService.Insights(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to build insights", "error", err)
		utils.SendJSONError(w, "Failed to build insights", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, result, http.StatusOK)
}

func (h *InsightsHandler) HandleGetSavingsProjection(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	result, err := h.insightService.SavingsProjection(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to build savings projection", "error", err)
		utils.SendJSONError(w, "Failed to build savings projection", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, result, http.StatusOK)
}

func (h *InsightsHandler) HandleGetNetWorthProjection(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	result, err := h.insightService.NetWorthProjection(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to build net worth projection", "error", err)
		utils.SendJSONError(w, "Failed to build net worth projection", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, result, http.StatusOK)
}
