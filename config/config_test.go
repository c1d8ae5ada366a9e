package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesPeersAndDefaults(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	v := viper.New()
	BindFlags(cmd, v)

	require.NoError(t, cmd.Flags().Set("name", "PeerA"))
	require.NoError(t, cmd.Flags().Set("peers", "PeerB@127.0.0.1:9001,PeerC@127.0.0.1:9002"))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "PeerA", cfg.Name)
	require.Len(t, cfg.Peers, 2)
	assert.Equal(t, Peer{Name: "PeerB", Endpoint: "127.0.0.1:9001"}, cfg.Peers[0])
	assert.Equal(t, DefaultHeartbeatInterval, cfg.HeartbeatInterval)
	assert.Equal(t, DefaultLivenessTimeout, cfg.LivenessTimeout)
}

func TestAllPeerNamesExcludesSelf(t *testing.T) {
	cfg := Config{
		Name: "PeerA",
		Peers: []Peer{
			{Name: "PeerA", Endpoint: "x"},
			{Name: "PeerB", Endpoint: "y"},
		},
	}
	assert.Equal(t, []string{"PeerB"}, cfg.AllPeerNames())
}

func TestMalformedPeerEntrySkipped(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	v := viper.New()
	BindFlags(cmd, v)
	require.NoError(t, cmd.Flags().Set("peers", "not-valid,PeerB@127.0.0.1:9001"))

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Len(t, cfg.Peers, 1)
	assert.Equal(t, "PeerB", cfg.Peers[0].Name)
}

func TestRPCTimeoutOverride(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	v := viper.New()
	BindFlags(cmd, v)
	require.NoError(t, cmd.Flags().Set("rpc-timeout", "3s"))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.RPCTimeout)
}

func TestMetricsAddrDefaultAndOverride(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	v := viper.New()
	BindFlags(cmd, v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.MetricsAddr)

	require.NoError(t, cmd.Flags().Set("metrics-addr", "0.0.0.0:9999"))
	cfg, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", cfg.MetricsAddr)
}
