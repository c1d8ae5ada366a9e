// Command nameserver hosts the naming/discovery service: an in-memory
// name->endpoint registry exposed over gRPC, ported from
// original_source/name_server.py's Pyro5 daemon.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/distsys/ricart-agrawala/naming"
)

func newRootCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "nameserver",
		Short: "Run the naming/discovery service",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New().WithField("component", "nameserver")

			lis, err := net.Listen("tcp", listenAddr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", listenAddr, err)
			}

			grpcSrv := grpc.NewServer()
			registry := naming.NewRegistry()
			naming.RegisterNamingServiceServer(grpcSrv, registry)

			log.WithField("addr", lis.Addr().String()).Info("naming service listening")
			return grpcSrv.Serve(lis)
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "127.0.0.1:7000", "address the naming service binds to")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
