package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	SessionID   string
	Account     AccountResponse
	MountID     string
	ManifestURL string
}

// Page renders the swap form. Every load starts a new, empty session.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CreateSession(r.Context())
	if err != nil {
		logrus.WithError(err).WithField("handler", "Page").Error("failed to create session")
		http.Error(w, "failed to load swap page", http.StatusInternalServerError)
		return
	}

	mount := h.wallet.Mount()
	data := pageData{
		SessionID:   session.ID.String(),
		Account:     toAccountResponse(h.service.Account()),
		MountID:     mount.ElementID,
		ManifestURL: mount.ManifestURL,
	}

	var buf bytes.Buffer
	if err = h.page.Execute(&buf, data); err != nil {
		logrus.WithError(err).WithField("handler", "Page").Error("failed to render page")
		http.Error(w, "failed to load swap page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
