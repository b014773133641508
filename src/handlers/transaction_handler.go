package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/services"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

type TransactionHandler struct {
	transactionService services.TransactionService
}

func NewTransactionHandler(transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func (h *TransactionHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	transactions, err := h.transactionService.List(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to list transactions", "error", err)
		utils.SendJSONError(w, "Failed to load transactions", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, transactions, http.StatusOK)
}

func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var tx models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if tx.Type != models.TypeIncome && tx.Type != models.TypeExpense {
		utils.SendJSONError(w, `type must be "income" or "expense"`, http.StatusBadRequest)
		return
	}

	created, err := h.transactionService.Create(userID, &tx)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to create transaction", "error", err)
		utils.SendJSONError(w, "Failed to create transaction", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, created, http.StatusOK)
}

func (h *TransactionHandler) HandleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid transaction id", http.StatusBadRequest)
		return
	}

	var patch models.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if patch.Type != nil && *patch.Type != models.TypeIncome && *patch.Type != models.TypeExpense {
		utils.SendJSONError(w, `type must be "income" or "expense"`, http.StatusBadRequest)
		return
	}

	updated, err := h.transactionService.Update(userID, id, patch)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update transaction")
		return
	}
	utils.SendJSONResponse(w, updated, http.StatusOK)
}

func (h *TransactionHandler) HandleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid transaction id", http.StatusBadRequest)
		return
	}

	if err := h.transactionService.Delete(userID, id); err != nil {
		respondServiceError(w, r, err, "Failed to delete transaction")
		return
	}
	utils.SendJSONResponse(w, map[string]string{"message": "Transaction deleted successfully"}, http.StatusOK)
}

// respondServiceError maps service-layer errors onto HTTP statuses shared by
// all record handlers.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.SendJSONError(w, "Record not found", http.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		utils.SendJSONError(w, "Record does not belong to the current user", http.StatusForbidden)
	default:
		logger.ErrorFromContext(r.Context(), fallback, "error", err)
		utils.SendJSONError(w, fallback, http.StatusInternalServerError)
	}
}
