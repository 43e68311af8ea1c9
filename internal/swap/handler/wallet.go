package handler

import (
	"errors"
	"net/http"

	"mnestswap/internal/domain"
	"mnestswap/internal/wallet"

	"github.com/google/uuid"
)

type WalletResponse struct {
	Mount     wallet.Mount          `json:"mount"`
	Manifest  wallet.ManifestStatus `json:"manifest"`
	Connected bool                  `json:"connected"`
	Address   string                `json:"address,omitempty"`
}

// GetWallet godoc
// @Summary Wallet widget
// @Description Mount point, manifest URL and the last manifest check. With session_id, also the connected account
// @Tags Wallet
// @Produce json
// @Param session_id query string false "Session ID"
// @Success 200 {object} WalletResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /wallet [get]
func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	res := WalletResponse{
		Mount:    h.wallet.Mount(),
		Manifest: h.wallet.Status(),
	}

	if raw := r.URL.Query().Get("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid session id")
			return
		}
		address, err := h.wallet.CurrentAccount(r.Context(), id)
		switch {
		case err == nil:
			res.Connected = true
			res.Address = address
		case errors.Is(err, domain.ErrNotConnected):
		default:
			writeServiceError(w, "GetWallet", err, "failed to get wallet account")
			return
		}
	}
	writeJSON(w, http.StatusOK, res)
}
