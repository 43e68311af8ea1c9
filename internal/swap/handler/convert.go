package handler

import (
	"net/http"

	"mnestswap/internal/domain"
)

type EditRequest struct {
	Field string  `json:"field" example:"source"`
	Value *string `json:"value" example:"10"`
}

func (req EditRequest) toEdit() (domain.Edit, error) {
	field := domain.Field(req.Field)
	if !field.Valid() {
		return domain.Edit{}, domain.ErrUnknownField
	}
	return domain.Edit{Field: field, Raw: *req.Value}, nil
}

type FormResponse struct {
	Source      string `json:"source" example:"10"`
	Destination string `json:"destination" example:"50.000000"`
}

func decodeEdit(w http.ResponseWriter, r *http.Request) (domain.Edit, bool) {
	var req EditRequest
	if !decodeBody(w, r, &req) {
		return domain.Edit{}, false
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, "value is required")
		return domain.Edit{}, false
	}
	edit, err := req.toEdit()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.Edit{}, false
	}
	return edit, true
}

// Convert godoc
// @Summary Convert an amount
// @Description Recompute the other swap field from an edit of one field, without a session
// @Tags Swap
// @Accept json
// @Produce json
// @Param request body EditRequest true "Edited field and its raw text"
// @Success 200 {object} FormResponse
// @Failure 400 {object} errorResponse
// @Router /convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	edit, ok := decodeEdit(w, r)
	if !ok {
		return
	}

	state, err := h.service.Convert(r.Context(), edit)
	if err != nil {
		writeServiceError(w, "Convert", err, "failed to convert amount")
		return
	}
	writeJSON(w, http.StatusOK, FormResponse{Source: state.Source, Destination: state.Destination})
}
