package handler

import (
	"net/http"

	"mnestswap/internal/domain"
)

type SessionResponse struct {
	SessionID     string `json:"session_id"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

func toSessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:     s.ID.String(),
		Source:        s.Form.Source,
		Destination:   s.Form.Destination,
		WalletAddress: s.WalletAddress,
	}
}

// CreateSession godoc
// @Summary Start a swap form
// @Tags Sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CreateSession(r.Context())
	if err != nil {
		writeServiceError(w, "CreateSession", err, "failed to create session")
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// GetSession godoc
// @Summary Current swap form
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.GetSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, "GetSession", err, "failed to get session")
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// ApplyEdit godoc
// @Summary Edit a swap field
// @Description Store the raw text of one field and recompute the other from the exchange rate
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body EditRequest true "Edited field and its raw text"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/edits [post]
func (h *Handler) ApplyEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	edit, ok := decodeEdit(w, r)
	if !ok {
		return
	}

	state, err := h.service.ApplyEdit(r.Context(), id, edit)
	if err != nil {
		writeServiceError(w, "ApplyEdit", err, "failed to apply edit")
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{
		SessionID:   id.String(),
		Source:      state.Source,
		Destination: state.Destination,
	})
}

// ResetSession godoc
// @Summary Drop a swap form
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /sessions/{id} [delete]
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.ResetSession(r.Context(), id); err != nil {
		writeServiceError(w, "ResetSession", err, "failed to reset session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type WalletAccountRequest struct {
	Address string `json:"address" example:"EQD...abc"`
}

// SetWalletAccount godoc
// @Summary Record the connected wallet
// @Description Called by the page when the wallet widget connects or disconnects; an empty address disconnects
// @Tags Sessions
// @Accept json
// @Param id path string true "Session ID"
// @Param request body WalletAccountRequest true "Wallet address"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /sessions/{id}/account [put]
func (h *Handler) SetWalletAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req WalletAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.SetWalletAccount(r.Context(), id, req.Address); err != nil {
		writeServiceError(w, "SetWalletAccount", err, "failed to record wallet account")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
