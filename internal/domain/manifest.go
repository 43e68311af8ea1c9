package domain

// WalletManifest is the subset of a TonConnect manifest the wallet widget needs.
type WalletManifest struct {
	URL     string `json:"url"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}
