package handler

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"mnestswap/internal/domain"
	"mnestswap/internal/wallet"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 10

type SwapService interface {
	Account() domain.Account
	Convert(ctx context.Context, edit domain.Edit) (domain.FormState, error)
	CreateSession(ctx context.Context) (domain.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (domain.Session, error)
	ApplyEdit(ctx context.Context, id uuid.UUID, edit domain.Edit) (domain.FormState, error)
	ResetSession(ctx context.Context, id uuid.UUID) error
	SetWalletAccount(ctx context.Context, id uuid.UUID, address string) error
}

type WalletWidget interface {
	wallet.Wallet
	Status() wallet.ManifestStatus
}

type Handler struct {
	service SwapService
	wallet  WalletWidget
	page    *template.Template
}

func NewSwapHandler(service SwapService, walletWidget WalletWidget) *Handler {
	return &Handler{service: service, wallet: walletWidget, page: pageTemplate}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeBody reads a small JSON body and rejects unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, handlerName string, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, domain.ErrSessionNotFound.Error())
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrUnknownField):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).WithField("handler", handlerName).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}
