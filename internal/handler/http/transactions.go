package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/utils"
	"github.com/MKhiriev/confidential-vault/models"
)

// maxTransactionBody bounds a submitted envelope.
const maxTransactionBody = 64 << 10

func (h *Handler) submitTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var tx models.Transaction
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTransactionBody)).Decode(&tx); err != nil {
		log.Err(err).Str("func", "*Handler.submitTransaction").Msg("invalid transaction JSON")
		writeError(w, r, ErrInvalidJSON, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.TransactionService.Submit(r.Context(), tx)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.submitTransaction").Int("status", status).Msg("transaction rejected")
		writeError(w, r, err, status)
		return
	}

	utils.WriteJSON(w, receipt, http.StatusOK)
}
