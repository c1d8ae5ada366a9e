// Package rpcserver implements the RPC endpoint: it receives
// REQUEST/REPLY/HEARTBEAT over gRPC and dispatches into
// the Mutex Engine and Failure Detector, acquiring no lock itself and
// never blocking the serving loop on another RPC. Grounded on
// peer.go's Node type serving as its own pb.MutexServiceServer, with
// the logging/recovery interceptor chain adopted from the pack's
// gocryptotrader/bsc-bp use of grpc-ecosystem/go-grpc-middleware.
package rpcserver

import (
	"context"
	"net"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/distsys/ricart-agrawala/mutexpb"
)

// Engine is the subset of *engine.Engine the RPC endpoint dispatches
// into.
type Engine interface {
	HandleRequest(requesterName string, requesterTimestamp uint64) uint64
	ReceiveReply(senderName string, permission bool)
}

// HeartbeatHandler is implemented by *detector.Detector.
type HeartbeatHandler interface {
	HandleHeartbeat(sender string)
}

// Server is the mutexpb.MutexServiceServer implementation: a thin
// dispatcher with no protocol state of its own.
type Server struct {
	mutexpb.UnimplementedMutexServiceServer

	engine    Engine
	detector  HeartbeatHandler
	log       *logrus.Entry
	grpcSrv   *grpc.Server
}

// New constructs a Server wired against engine and detector.
func New(engine Engine, detector HeartbeatHandler, log *logrus.Entry) *Server {
	log = log.WithField("component", "rpcserver")

	interceptorLogger := logrus.NewEntry(log.Logger)
	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_middleware.ChainUnaryServer(
				grpc_logrus.UnaryServerInterceptor(interceptorLogger),
				grpc_recovery.UnaryServerInterceptor(),
			),
		),
	)

	s := &Server{
		engine:   engine,
		detector: detector,
		log:      log,
		grpcSrv:  grpcSrv,
	}
	mutexpb.RegisterMutexServiceServer(grpcSrv, s)
	return s
}

// HandleRequest implements the synchronous REQUEST/response half of
// the protocol. Granted always reports true here: the grant/defer
// decision is communicated asynchronously via the separate REPLY
// message, not via this RPC's return value. This ack exists purely so
// the caller can fold in the receiver's Lamport clock without a second
// round trip.
func (s *Server) HandleRequest(_ context.Context, req *mutexpb.AccessRequest) (*mutexpb.AccessReply, error) {
	ts := s.engine.HandleRequest(req.GetRequesterName(), uint64(req.GetTimestamp()))
	return &mutexpb.AccessReply{Granted: true, Timestamp: int64(ts)}, nil
}

// ReceiveReply implements the fire-and-forget REPLY handler.
func (s *Server) ReceiveReply(_ context.Context, req *mutexpb.ReplyMessage) (*mutexpb.Ack, error) {
	s.engine.ReceiveReply(req.GetSenderName(), req.GetPermission())
	return &mutexpb.Ack{}, nil
}

// Heartbeat implements the fire-and-forget HEARTBEAT handler.
func (s *Server) Heartbeat(_ context.Context, req *mutexpb.HeartbeatMessage) (*mutexpb.Ack, error) {
	s.detector.HandleHeartbeat(req.GetSenderName())
	return &mutexpb.Ack{}, nil
}

// Serve blocks accepting connections on lis. Callers typically run
// this in its own goroutine.
func (s *Server) Serve(lis net.Listener) error {
	s.log.WithField("addr", lis.Addr().String()).Info("rpc endpoint listening")
	if err := s.grpcSrv.Serve(lis); err != nil {
		return errors.Wrap(err, "rpcserver: serve")
	}
	return nil
}

// GracefulStop drains in-flight RPCs and stops serving.
func (s *Server) GracefulStop() {
	s.grpcSrv.GracefulStop()
}
