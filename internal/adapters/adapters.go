package adapters

import (
	"context"

	"mnestswap/internal/domain"

	"github.com/google/uuid"
)

// SessionStore holds swap form sessions in memory only.
type SessionStore interface {
	Get(id uuid.UUID) (domain.Session, bool)
	Set(session domain.Session) error
	Delete(id uuid.UUID)
}

type ManifestClient interface {
	FetchManifest(ctx context.Context, manifestURL string) (domain.WalletManifest, error)
}
