package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	chdir(t, t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("swap:\n  exchange_rate: 5\nlogging:\n  level: error\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = convertCmd.Flags().Set("field", "source")
		_ = rootCmd.PersistentFlags().Set("json", "false")
	})

	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

func TestConvertCommand_SourceJSON(t *testing.T) {
	out, err := runCLI(t, "convert", "10", "--json")
	require.NoError(t, err)

	var got convertOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, convertOutput{Rate: 5, Source: "10", Destination: "50.000000"}, got)
}

func TestConvertCommand_DestinationText(t *testing.T) {
	out, err := runCLI(t, "convert", "--field", "destination", "50")
	require.NoError(t, err)
	require.Contains(t, out, "10.000000 USDT")
	require.Contains(t, out, "50 MNest")
}

func TestConvertCommand_UnknownField(t *testing.T) {
	_, err := runCLI(t, "convert", "--field", "usdt", "1")
	require.Error(t, err)
}

func TestAccountCommand(t *testing.T) {
	out, err := runCLI(t, "account")
	require.NoError(t, err)
	require.Contains(t, out, "1.000000")
	require.Contains(t, out, "0.200000")
	require.Contains(t, out, "5 MNest = 0.2 USDT")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
