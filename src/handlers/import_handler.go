package handlers

import (
	"net/http"

	"github.com/0pain01/Financial-Foresight/src/config"
	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/parsers"
	"github.com/0pain01/Financial-Foresight/src/services"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

// ImportHandler ingests CSV bank statements and feeds the parsed rows through
// the transaction pipeline.
type ImportHandler struct {
	parser             *parsers.StatementParser
	transactionService services.TransactionService
}

func NewImportHandler(parser *parsers.StatementParser, transactionService services.TransactionService) *ImportHandler {
	return &ImportHandler{parser: parser, transactionService: transactionService}
}

func (h *ImportHandler) HandleImportStatement(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.Cfg.MaxImportSizeBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.SendJSONError(w, "A CSV file is required in the 'file' field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, total, err := h.parser.Parse(file)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to parse statement", "filename", header.Filename, "error", err)
		utils.SendJSONError(w, "Failed to parse statement file", http.StatusBadRequest)
		return
	}

	imported, err := h.transactionService.ImportRows(userID, rows)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to import statement rows", "error", err)
		utils.SendJSONError(w, "Failed to import transactions", http.StatusInternalServerError)
		return
	}

	logger.InfoFromContext(r.Context(), "Statement imported", "filename", header.Filename, "imported", imported, "total", total)
	utils.SendJSONResponse(w, map[string]int{"imported": imported, "total": total}, http.StatusOK)
}
