// Package config centralizes the peer's runtime configuration:
// identity, the static peer universe, network addresses, the naming
// service address, and the tunable intervals/timeouts governing
// heartbeats and quorum waits. Layered viper-over-cobra generalizes the
// original flat flag.String calls (id/addr/peers) into flag + env
// (RA_ prefix), with sensible defaults as fallback. No config file is
// read.
package config

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Defaults for the heartbeat/liveness/quorum tunables.
const (
	DefaultHeartbeatInterval = 2 * time.Second
	DefaultLivenessTimeout   = 7 * time.Second
	DefaultRPCTimeout        = 10 * time.Second
	DefaultQuorumPoll        = 100 * time.Millisecond
	DefaultCSHoldDuration    = 5 * time.Second
)

// Peer describes one entry in the static peer universe. Only Name is
// used at runtime; Endpoint is parsed but not used to seed the naming
// service, where each peer registers its own endpoint.
type Peer struct {
	Name     string
	Endpoint string
}

// Config is the fully-resolved runtime configuration for one peer
// process.
type Config struct {
	Name           string
	ListenAddr     string
	NamingAddr     string
	MetricsAddr    string
	Peers          []Peer
	AutoRequest    bool
	CSHoldDuration time.Duration

	HeartbeatInterval time.Duration
	LivenessTimeout   time.Duration
	RPCTimeout        time.Duration
	QuorumPoll        time.Duration
}

// AllPeerNames returns every configured peer name except this peer's
// own, used to seed engine.New's universe.
func (c Config) AllPeerNames() []string {
	names := make([]string, 0, len(c.Peers))
	for _, p := range c.Peers {
		if p.Name == c.Name {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}

// BindFlags registers the peer process's cobra flags and binds them
// into v, so viper resolves flag > env (RA_ prefix) > default, in that
// order.
func BindFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	flags.String("name", "", "this peer's identity")
	flags.String("listen", "", "address this peer's RPC endpoint binds to (host:port)")
	flags.String("naming-addr", "127.0.0.1:7000", "address of the naming/discovery service")
	flags.String("metrics-addr", "127.0.0.1:9090", "address the /metrics HTTP endpoint binds to")
	flags.StringSlice("peers", nil, "comma-separated name@host:port entries for the static peer universe")
	flags.Bool("auto-request", false, "periodically call request_access, mirroring the original driver loop")
	flags.Duration("cs-hold", DefaultCSHoldDuration, "duration to hold the critical section once granted")
	flags.Duration("heartbeat-interval", DefaultHeartbeatInterval, "HEARTBEAT_INTERVAL")
	flags.Duration("liveness-timeout", DefaultLivenessTimeout, "TIMEOUT_HEARTBEAT")
	flags.Duration("rpc-timeout", DefaultRPCTimeout, "global RPC transport timeout")
	flags.Duration("quorum-poll", DefaultQuorumPoll, "quorum-wait poll interval")

	v.SetEnvPrefix("RA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)
}

// Load resolves v's bound values into a Config. peers entries use the
// "name@host:port" format.
func Load(v *viper.Viper) (Config, error) {
	raw := v.GetStringSlice("peers")
	peers := make([]Peer, 0, len(raw))
	for _, entry := range raw {
		parts := strings.SplitN(entry, "@", 2)
		if len(parts) != 2 {
			continue
		}
		peers = append(peers, Peer{Name: parts[0], Endpoint: parts[1]})
	}

	return Config{
		Name:              v.GetString("name"),
		ListenAddr:        v.GetString("listen"),
		NamingAddr:        v.GetString("naming-addr"),
		MetricsAddr:       v.GetString("metrics-addr"),
		Peers:             peers,
		AutoRequest:       v.GetBool("auto-request"),
		CSHoldDuration:    v.GetDuration("cs-hold"),
		HeartbeatInterval: v.GetDuration("heartbeat-interval"),
		LivenessTimeout:   v.GetDuration("liveness-timeout"),
		RPCTimeout:        v.GetDuration("rpc-timeout"),
		QuorumPoll:        v.GetDuration("quorum-poll"),
	}, nil
}
