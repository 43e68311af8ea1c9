package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"mnestswap/internal/domain"
)

const maxManifestBytes = 64 << 10

var ErrInvalidManifest = errors.New("invalid wallet manifest")

// ManifestClient downloads TonConnect manifests. It only reads public JSON
// and never talks to a wallet.
type ManifestClient struct {
	http *http.Client
}

func (c *ManifestClient) FetchManifest(ctx context.Context, manifestURL string) (domain.WalletManifest, error) {
	u, err := url.Parse(manifestURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return domain.WalletManifest{}, fmt.Errorf("failed to parse manifest URL %q: %w", manifestURL, ErrInvalidManifest)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.WalletManifest{}, fmt.Errorf("failed to create manifest request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.WalletManifest{}, fmt.Errorf("failed to execute manifest request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.WalletManifest{}, fmt.Errorf("unexpected status code %d for manifest: %s", resp.StatusCode, resp.Status)
	}

	var manifest domain.WalletManifest
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxManifestBytes)).Decode(&manifest); err != nil {
		return domain.WalletManifest{}, fmt.Errorf("failed to decode manifest: %w", err)
	}

	switch {
	case manifest.URL == "":
		return domain.WalletManifest{}, fmt.Errorf("%w: url is required", ErrInvalidManifest)
	case manifest.Name == "":
		return domain.WalletManifest{}, fmt.Errorf("%w: name is required", ErrInvalidManifest)
	case manifest.IconURL == "":
		return domain.WalletManifest{}, fmt.Errorf("%w: iconUrl is required", ErrInvalidManifest)
	}
	return manifest, nil
}

func NewManifestClient(httpClient *http.Client) *ManifestClient {
	return &ManifestClient{http: httpClient}
}
