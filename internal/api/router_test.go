package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mnestswap/internal/adapters/cache"
	"mnestswap/internal/domain"
	"mnestswap/internal/swap"
	"mnestswap/internal/swap/handler"
	"mnestswap/internal/wallet"

	"github.com/stretchr/testify/require"
)

type stubManifestClient struct{}

func (stubManifestClient) FetchManifest(context.Context, string) (domain.WalletManifest, error) {
	return domain.WalletManifest{URL: "https://mnest.example", Name: "MNest", IconURL: "https://mnest.example/logo.png"}, nil
}

func newTestServer(t *testing.T, strict bool) *httptest.Server {
	t.Helper()
	sessions, err := cache.NewSessionCache(64, time.Minute)
	require.NoError(t, err)
	t.Cleanup(sessions.Close)

	account := domain.Account{ExchangeRate: 5, Owner: "0x1234...5678", Balances: domain.Balances{MNest: 1000000, USDT: 200000}}
	svc := swap.NewService(swap.NewConverter(swap.WithStrict(strict)), account, sessions)
	tonConnect := wallet.NewTonConnect(wallet.Mount{ElementID: "ton-connect", ManifestURL: "https://mnest.example/m.json"}, sessions, stubManifestClient{})
	require.NoError(t, tonConnect.CheckManifest(context.Background()))

	srv := httptest.NewServer(NewRouter(handler.NewSwapHandler(svc, tonConnect)))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRouter_Healthz(t *testing.T) {
	srv := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_SessionFlow(t *testing.T) {
	srv := newTestServer(t, false)

	var created handler.SessionResponse
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions", "", &created))
	require.NotEmpty(t, created.SessionID)
	base := srv.URL + "/api/v1/sessions/" + created.SessionID

	var state handler.SessionResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, base+"/edits", `{"field":"source","value":"10"}`, &state))
	require.Equal(t, "10", state.Source)
	require.Equal(t, "50.000000", state.Destination)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, base+"/edits", `{"field":"destination","value":"50"}`, &state))
	require.Equal(t, "10.000000", state.Source)
	require.Equal(t, "50", state.Destination)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base, "", &state))
	require.Equal(t, "10.000000", state.Source)
	require.Equal(t, "50", state.Destination)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, base+"/edits", `{"field":"source","value":""}`, &state))
	require.Empty(t, state.Source)
	require.Empty(t, state.Destination)

	require.Equal(t, http.StatusNoContent, doJSON(t, http.MethodPut, base+"/account", `{"address":"EQabc"}`, nil))
	var walletRes handler.WalletResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/api/v1/wallet?session_id="+created.SessionID, "", &walletRes))
	require.True(t, walletRes.Connected)
	require.Equal(t, "EQabc", walletRes.Address)
	require.True(t, walletRes.Manifest.OK)

	require.Equal(t, http.StatusNoContent, doJSON(t, http.MethodDelete, base, "", nil))
	var errRes map[string]string
	require.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, base, "", &errRes))
	require.Equal(t, "session not found", errRes["error"])
}

func TestRouter_ConvertPermissiveAndStrict(t *testing.T) {
	permissive := newTestServer(t, false)
	var form handler.FormResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, permissive.URL+"/api/v1/convert", `{"field":"source","value":"abc"}`, &form))
	require.Equal(t, "NaN", form.Destination)

	strict := newTestServer(t, true)
	var errRes map[string]string
	require.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, strict.URL+"/api/v1/convert", `{"field":"source","value":"abc"}`, &errRes))
	require.Contains(t, errRes["error"], "invalid amount")
}

func TestRouter_AccountAndSwaps(t *testing.T) {
	srv := newTestServer(t, false)

	var account handler.AccountResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/api/v1/account", "", &account))
	require.Equal(t, "5 MNest = 0.2 USDT", account.RateLabel)

	var errRes map[string]string
	require.Equal(t, http.StatusNotImplemented, doJSON(t, http.MethodPost, srv.URL+"/api/v1/swaps", "", &errRes))
	require.Equal(t, domain.ErrSwapNotSupported.Error(), errRes["error"])
}

func TestRouter_PageStartsSession(t *testing.T) {
	srv := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, false)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/convert", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://wallet.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
