// Package naming implements the naming/discovery collaborator:
// register(name, endpoint) and lookup(name) -> endpoint | NotFound. It
// is out of scope for the mutex protocol itself but is shipped here as
// a minimal gRPC service so the system runs end-to-end.
package naming

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// ErrNotFound is returned by Lookup when name has never been registered.
var ErrNotFound = errors.New("naming: name not registered")

// Registry is the in-memory server-side store: name -> endpoint. No
// persistence, no replication — out of scope for this service.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]string
}

func NewRegistry() *Registry {
	return &Registry{endpoints: make(map[string]string)}
}

func (r *Registry) Register(_ context.Context, req *RegisterRequest) (*RegisterReply, error) {
	r.mu.Lock()
	r.endpoints[req.Name] = req.Endpoint
	r.mu.Unlock()
	return &RegisterReply{}, nil
}

func (r *Registry) Lookup(_ context.Context, req *LookupRequest) (*LookupReply, error) {
	r.mu.RLock()
	endpoint, ok := r.endpoints[req.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &LookupReply{Endpoint: endpoint}, nil
}

func (r *Registry) mustEmbedUnimplementedNamingServiceServer() {}

// Client is the per-peer handle used by messaging.Layer to resolve a
// peer name fresh on every send.
type Client struct {
	conn *grpc.ClientConn
	rpc  NamingServiceClient
}

// Dial connects to the naming service at addr. The connection is kept
// open; individual Lookup/Register calls are still independent RPCs,
// so a single bad lookup never poisons subsequent ones.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "naming: dial")
	}
	return &Client{conn: conn, rpc: NewNamingServiceClient(conn)}, nil
}

func (c *Client) Register(ctx context.Context, name, endpoint string) error {
	_, err := c.rpc.Register(ctx, &RegisterRequest{Name: name, Endpoint: endpoint})
	return errors.Wrapf(err, "naming: register %s", name)
}

func (c *Client) Lookup(ctx context.Context, name string) (string, error) {
	reply, err := c.rpc.Lookup(ctx, &LookupRequest{Name: name})
	if err != nil {
		return "", errors.Wrapf(err, "naming: lookup %s", name)
	}
	return reply.Endpoint, nil
}

func (c *Client) Close() error { return c.conn.Close() }
