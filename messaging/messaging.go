// Package messaging implements the Messaging Layer: it resolves a peer
// name to an endpoint fresh on every send (no long-lived proxy cache),
// performs the REQUEST/REPLY/HEARTBEAT RPCs, and reports REQUEST
// transport failures to the caller, which removes the peer from the
// engine's active-peer set. Grounded on
// peer.go's per-call client map plus original_source/peer.py's
// fresh-proxy-per-send discipline (`_send_request_thread`/
// `_send_reply_thread` each call `Pyro5.api.Proxy(uri)` anew rather
// than caching a stub).
package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/distsys/ricart-agrawala/mutexpb"
	"github.com/distsys/ricart-agrawala/naming"
)

// Resolver looks up a peer's current RPC endpoint. Implemented by
// *naming.Client; kept as an interface so messaging can be unit tested
// without a running naming service.
type Resolver interface {
	Lookup(ctx context.Context, name string) (endpoint string, err error)
}

// Layer is the engine.Messenger implementation used in production: it
// performs a naming lookup, dials, calls, and tears the connection back
// down on every send.
type Layer struct {
	resolver   Resolver
	rpcTimeout time.Duration
	log        *logrus.Entry
	dialOpts   []grpc.DialOption
}

// New constructs a Layer. rpcTimeout is the global transport timeout
// (defaults to 10s when zero).
func New(resolver Resolver, rpcTimeout time.Duration, log *logrus.Entry) *Layer {
	if rpcTimeout <= 0 {
		rpcTimeout = 10 * time.Second
	}
	return &Layer{
		resolver:   resolver,
		rpcTimeout: rpcTimeout,
		log:        log.WithField("component", "messaging"),
		dialOpts:   []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
	}
}

func (l *Layer) dial(ctx context.Context, target string) (*grpc.ClientConn, error) {
	endpoint, err := l.resolver.Lookup(ctx, target)
	if err != nil {
		return nil, errors.Wrapf(err, "messaging: resolve %s", target)
	}
	conn, err := grpc.NewClient(endpoint, l.dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "messaging: dial %s at %s", target, endpoint)
	}
	return conn, nil
}

// SendRequest implements engine.Messenger. On any transport failure the
// caller (engine.dispatchRequest) removes target from active_peers;
// this method only reports the error.
func (l *Layer) SendRequest(target, requesterName string, timestamp uint64) (uint64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.rpcTimeout)
	defer cancel()

	corrID := uuid.NewString()
	log := l.log.WithFields(logrus.Fields{"peer": target, "correlation_id": corrID})

	conn, err := l.dial(ctx, target)
	if err != nil {
		log.WithError(err).Warn("REQUEST dial failed")
		return 0, err
	}
	defer conn.Close()

	client := mutexpb.NewMutexServiceClient(conn)
	reply, err := client.HandleRequest(ctx, &mutexpb.AccessRequest{
		RequesterName: requesterName,
		Timestamp:     int64(timestamp),
	})
	if err != nil {
		log.WithError(err).Warn("REQUEST send failed")
		return 0, errors.Wrapf(err, "messaging: send request to %s", target)
	}
	log.WithField("granted", reply.GetGranted()).Debug("REQUEST acknowledged")
	return uint64(reply.GetTimestamp()), nil
}

// SendReply is fire-and-forget; failures are logged and swallowed.
func (l *Layer) SendReply(target, selfName string, permission bool) {
	ctx, cancel := context.WithTimeout(context.Background(), l.rpcTimeout)
	defer cancel()

	corrID := uuid.NewString()
	log := l.log.WithFields(logrus.Fields{"peer": target, "correlation_id": corrID})

	conn, err := l.dial(ctx, target)
	if err != nil {
		log.WithError(err).Debug("REPLY dial failed, swallowed")
		return
	}
	defer conn.Close()

	client := mutexpb.NewMutexServiceClient(conn)
	if _, err := client.ReceiveReply(ctx, &mutexpb.ReplyMessage{SenderName: selfName, Permission: permission}); err != nil {
		log.WithError(err).Debug("REPLY send failed, swallowed")
	}
}

// SendHeartbeat is fire-and-forget; failures are logged and swallowed.
func (l *Layer) SendHeartbeat(target, selfName string) {
	ctx, cancel := context.WithTimeout(context.Background(), l.rpcTimeout)
	defer cancel()

	corrID := uuid.NewString()
	log := l.log.WithFields(logrus.Fields{"peer": target, "correlation_id": corrID})

	conn, err := l.dial(ctx, target)
	if err != nil {
		log.WithError(err).Debug("HEARTBEAT dial failed, swallowed")
		return
	}
	defer conn.Close()

	client := mutexpb.NewMutexServiceClient(conn)
	if _, err := client.Heartbeat(ctx, &mutexpb.HeartbeatMessage{SenderName: selfName}); err != nil {
		log.WithError(err).Debug("HEARTBEAT send failed, swallowed")
	}
}

// namingResolver adapts *naming.Client to Resolver.
type namingResolver struct {
	client *naming.Client
}

// NewNamingResolver wraps a naming.Client as a Resolver for New.
func NewNamingResolver(client *naming.Client) Resolver {
	return namingResolver{client: client}
}

func (n namingResolver) Lookup(ctx context.Context, name string) (string, error) {
	return n.client.Lookup(ctx, name)
}
