package handler

import (
	"net/http"

	"mnestswap/internal/domain"
)

// SubmitSwap godoc
// @Summary Submit a swap
// @Description Swaps are preview only; nothing is ever sent on chain
// @Tags Swap
// @Produce json
// @Failure 501 {object} errorResponse
// @Router /swaps [post]
func (h *Handler) SubmitSwap(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotImplemented, domain.ErrSwapNotSupported.Error())
}
