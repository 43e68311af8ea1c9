package wallet

import (
	"context"
	"sync"
	"time"

	"mnestswap/internal/adapters"
	"mnestswap/internal/domain"

	"github.com/google/uuid"
)

// Mount is everything the page needs to render the wallet connect button.
type Mount struct {
	ElementID   string `json:"element_id"`
	ManifestURL string `json:"manifest_url"`
}

// Wallet is the opaque connect widget. Nothing it reports feeds the converter.
type Wallet interface {
	Mount() Mount
	CurrentAccount(ctx context.Context, sessionID uuid.UUID) (string, error)
}

type ManifestStatus struct {
	CheckedAt time.Time `json:"checked_at"`
	OK        bool      `json:"ok"`
	Name      string    `json:"name,omitempty"`
	Error     string    `json:"error,omitempty"`
}

type TonConnect struct {
	mount    Mount
	sessions adapters.SessionStore
	client   adapters.ManifestClient

	mu     sync.RWMutex
	status ManifestStatus
}

func (w *TonConnect) Mount() Mount {
	return w.mount
}

func (w *TonConnect) CurrentAccount(_ context.Context, sessionID uuid.UUID) (string, error) {
	session, ok := w.sessions.Get(sessionID)
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	if session.WalletAddress == "" {
		return "", domain.ErrNotConnected
	}
	return session.WalletAddress, nil
}

// CheckManifest fetches the configured manifest and records the outcome.
func (w *TonConnect) CheckManifest(ctx context.Context) error {
	manifest, err := w.client.FetchManifest(ctx, w.mount.ManifestURL)
	status := ManifestStatus{CheckedAt: time.Now().UTC(), OK: err == nil}
	if err != nil {
		status.Error = err.Error()
	} else {
		status.Name = manifest.Name
	}

	w.mu.Lock()
	w.status = status
	w.mu.Unlock()
	return err
}

// Status returns the last manifest check; the zero value means no check ran yet.
func (w *TonConnect) Status() ManifestStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.status
}

func NewTonConnect(mount Mount, sessions adapters.SessionStore, client adapters.ManifestClient) *TonConnect {
	return &TonConnect{mount: mount, sessions: sessions, client: client}
}
