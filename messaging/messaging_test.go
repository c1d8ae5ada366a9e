package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	endpoints map[string]string
}

func (s stubResolver) Lookup(_ context.Context, name string) (string, error) {
	ep, ok := s.endpoints[name]
	if !ok {
		return "", errors.New("not registered")
	}
	return ep, nil
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}

func TestSendRequestResolveFailureReturnsError(t *testing.T) {
	l := New(stubResolver{endpoints: map[string]string{}}, 50*time.Millisecond, testLogger())
	_, err := l.SendRequest("PeerB", "PeerA", 1)
	require.Error(t, err)
}

func TestSendReplyResolveFailureSwallowed(t *testing.T) {
	l := New(stubResolver{endpoints: map[string]string{}}, 50*time.Millisecond, testLogger())
	assert.NotPanics(t, func() { l.SendReply("PeerB", "PeerA", true) })
}

func TestSendHeartbeatResolveFailureSwallowed(t *testing.T) {
	l := New(stubResolver{endpoints: map[string]string{}}, 50*time.Millisecond, testLogger())
	assert.NotPanics(t, func() { l.SendHeartbeat("PeerB", "PeerA") })
}

func TestNewDefaultsTimeout(t *testing.T) {
	l := New(stubResolver{}, 0, testLogger())
	assert.Equal(t, 10*time.Second, l.rpcTimeout)
}
