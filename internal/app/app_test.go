package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mnestswap/internal/config"
	"mnestswap/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	SetupLogger("debug")
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	SetupLogger("not-a-level")
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestNewConverter_FollowsConfig(t *testing.T) {
	c := NewConverter(config.Swap{Precision: 2, Strict: true})
	require.Equal(t, int32(2), c.Precision())
	require.True(t, c.Strict())

	_, err := c.OnSourceChanged("abc", 5)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestBuild_WiresRouter(t *testing.T) {
	cfg := &config.AppConfig{
		Swap: config.Swap{
			ExchangeRate: 5,
			Owner:        "0x1234...5678",
			Balances:     config.Balances{MNest: 1000000, USDT: 200000},
			Precision:    6,
		},
		Session: config.Session{MaxItems: 16, TTLSeconds: 60},
		Wallet:  config.Wallet{MountID: "ton-connect", ManifestURL: "https://mnest.example/m.json"},
	}

	components, err := Build(cfg)
	require.NoError(t, err)
	t.Cleanup(components.Sessions.Close)
	require.NotNil(t, components.Scheduler)

	rr := httptest.NewRecorder()
	components.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/account", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"rate_label":"5 MNest = 0.2 USDT"`)
}
