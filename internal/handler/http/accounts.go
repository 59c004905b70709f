package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/service"
	"github.com/MKhiriev/confidential-vault/internal/utils"
	"github.com/MKhiriev/confidential-vault/models"
)

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	key, ok := accountParam(w, r, "pubkey")
	if !ok {
		return
	}

	acc, err := h.services.AccountService.GetAccount(r.Context(), key)
	if err != nil {
		h.fail(w, r, "*Handler.getAccount", err)
		return
	}

	utils.WriteJSON(w, models.AccountResponse{
		Account: acc,
		SOL:     service.FormatSOL(acc.Lamports),
		Exists:  acc.Exists(),
	}, http.StatusOK)
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	vault, err := h.services.AccountService.GetVault(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.getVault", err)
		return
	}
	utils.WriteJSON(w, vault, http.StatusOK)
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.services.AccountService.GetConfig(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.getConfig", err)
		return
	}
	utils.WriteJSON(w, cfg, http.StatusOK)
}

func (h *Handler) getParticipant(w http.ResponseWriter, r *http.Request) {
	owner, ok := accountParam(w, r, "owner")
	if !ok {
		return
	}

	rec, err := h.services.AccountService.GetParticipant(r.Context(), owner)
	if err != nil {
		h.fail(w, r, "*Handler.getParticipant", err)
		return
	}
	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) getIntentKey(w http.ResponseWriter, r *http.Request) {
	owner, ok := accountParam(w, r, "owner")
	if !ok {
		return
	}

	key, err := h.services.AccountService.GetIntentKey(r.Context(), owner)
	if err != nil {
		h.fail(w, r, "*Handler.getIntentKey", err)
		return
	}
	utils.WriteJSON(w, models.NewIntentKeyResponse(key), http.StatusOK)
}

func (h *Handler) airdrop(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AirdropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.airdrop").Msg("invalid airdrop JSON")
		writeError(w, r, ErrInvalidJSON, http.StatusBadRequest)
		return
	}

	acc, err := h.services.AccountService.Airdrop(r.Context(), req.PubKey, req.Lamports)
	if err != nil {
		h.fail(w, r, "*Handler.airdrop", err)
		return
	}

	log.Info().Str("func", "*Handler.airdrop").Str("pubkey", req.PubKey.String()).
		Uint64("lamports", req.Lamports).Msg("airdrop done")
	utils.WriteJSON(w, models.AccountResponse{
		Account: acc,
		SOL:     service.FormatSOL(acc.Lamports),
		Exists:  acc.Exists(),
	}, http.StatusOK)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", fn).Int("status", status).Send()
	writeError(w, r, err, status)
}

func accountParam(w http.ResponseWriter, r *http.Request, name string) (models.AccountID, bool) {
	key, err := models.ParseAccountID(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return models.AccountID{}, false
	}
	return key, true
}
