// Command peer runs one Ricart-Agrawala mutual-exclusion participant:
// it registers its endpoint with the naming service, serves the
// Mutex Engine's RPCs, and either loops request_access automatically
// or hands control to an interactive operator console.
package main

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/distsys/ricart-agrawala/config"
	"github.com/distsys/ricart-agrawala/detector"
	"github.com/distsys/ricart-agrawala/engine"
	"github.com/distsys/ricart-agrawala/messaging"
	"github.com/distsys/ricart-agrawala/metrics"
	"github.com/distsys/ricart-agrawala/naming"
	"github.com/distsys/ricart-agrawala/rpcserver"
)

type peerRuntime struct {
	cfg        config.Config
	log        *logrus.Entry
	eng        *engine.Engine
	det        *detector.Detector
	srv        *rpcserver.Server
	recorder   *metrics.Recorder
	namingCl   *naming.Client
	lis        net.Listener
	metricsSrv *http.Server
}

func buildPeer(cfg config.Config) (*peerRuntime, error) {
	log := logrus.New()
	entry := logrus.NewEntry(log).WithField("peer", cfg.Name)

	namingCl, err := naming.Dial(cfg.NamingAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial naming service: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
	}

	registerCtx, cancel := context.WithTimeout(context.Background(), cfg.RPCTimeout)
	defer cancel()
	if err := namingCl.Register(registerCtx, cfg.Name, lis.Addr().String()); err != nil {
		return nil, fmt.Errorf("register with naming service: %w", err)
	}

	recorder := metrics.New(cfg.Name)
	resolver := messaging.NewNamingResolver(namingCl)
	msgLayer := messaging.New(resolver, cfg.RPCTimeout, entry)

	eng := engine.New(cfg.Name, cfg.AllPeerNames(), msgLayer, recorder, entry, cfg.QuorumPoll)
	det := detector.New(eng, msgLayer, recorder, entry, cfg.HeartbeatInterval, cfg.LivenessTimeout)
	srv := rpcserver.New(eng, det, entry)

	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	metricsSrv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}

	return &peerRuntime{
		cfg: cfg, log: entry, eng: eng, det: det, srv: srv,
		recorder: recorder, namingCl: namingCl, lis: lis,
		metricsSrv: metricsSrv,
	}, nil
}

func (p *peerRuntime) start(ctx context.Context) {
	go func() {
		if err := p.srv.Serve(p.lis); err != nil {
			p.log.WithError(err).Error("rpc server stopped")
		}
	}()
	go func() {
		if err := p.metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			p.log.WithError(err).Error("metrics server stopped")
		}
	}()
	p.det.Start()

	if p.cfg.AutoRequest {
		go p.autoRequestLoop(ctx)
	}
}

// autoRequestLoop periodically calls request_access, opted into via
// --auto-request rather than being the binary's only mode.
func (p *peerRuntime) autoRequestLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.eng.Stopped():
			return
		case <-ticker.C:
			p.eng.RequestAccess(p.cfg.CSHoldDuration)
		}
	}
}

func (p *peerRuntime) stop() {
	p.eng.Stop()
	p.det.Stop()
	p.srv.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.metricsSrv.Shutdown(shutdownCtx); err != nil {
		p.log.WithError(err).Warn("metrics server shutdown")
	}
	p.namingCl.Close()
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "peer",
		Short: "Run a Ricart-Agrawala mutual-exclusion peer",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve RPCs and participate in the protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			rt, err := buildPeer(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			rt.start(ctx)
			<-ctx.Done()
			rt.stop()
			return nil
		},
	}
	config.BindFlags(serveCmd, v)

	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Interactive operator console (request/release/list/quit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			rt, err := buildPeer(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			rt.start(ctx)
			defer rt.stop()
			runConsole(ctx, rt)
			return nil
		},
	}
	config.BindFlags(consoleCmd, v)

	root.AddCommand(serveCmd, consoleCmd)
	return root
}

// runConsole is the thin menu-driven operator console, mirroring
// original_source/peer.py's main loop. It holds no protocol state:
// every option calls straight through to the engine.
func runConsole(ctx context.Context, rt *peerRuntime) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("commands: request <seconds> | release | peers | quit")
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		switch {
		case line == "release":
			rt.eng.ReleaseAccess()
		case line == "peers":
			fmt.Println(rt.eng.ActivePeers())
		case line == "quit":
			return
		case len(line) > 8 && line[:8] == "request ":
			secs, err := strconv.Atoi(line[8:])
			if err != nil {
				fmt.Println("usage: request <seconds>")
				continue
			}
			ok := rt.eng.RequestAccess(time.Duration(secs) * time.Second)
			fmt.Println("accepted:", ok)
		default:
			fmt.Println("commands: request <seconds> | release | peers | quit")
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
