package rpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/distsys/ricart-agrawala/mutexpb"
)

type fakeEngine struct {
	handledRequester string
	handledTimestamp uint64
	repliedSender    string
	repliedPermission bool
}

func (f *fakeEngine) HandleRequest(requesterName string, requesterTimestamp uint64) uint64 {
	f.handledRequester = requesterName
	f.handledTimestamp = requesterTimestamp
	return requesterTimestamp + 1
}

func (f *fakeEngine) ReceiveReply(senderName string, permission bool) {
	f.repliedSender = senderName
	f.repliedPermission = permission
}

type fakeDetector struct {
	heartbeatSender string
}

func (f *fakeDetector) HandleHeartbeat(sender string) {
	f.heartbeatSender = sender
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}

func startTestServer(t *testing.T) (mutexpb.MutexServiceClient, *fakeEngine, *fakeDetector, func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	eng := &fakeEngine{}
	det := &fakeDetector{}
	srv := New(eng, det, testLogger())
	go srv.Serve(lis)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	cleanup := func() {
		conn.Close()
		srv.GracefulStop()
	}
	return mutexpb.NewMutexServiceClient(conn), eng, det, cleanup
}

func TestHandleRequestDispatchesToEngine(t *testing.T) {
	client, eng, _, cleanup := startTestServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	reply, err := client.HandleRequest(ctx, &mutexpb.AccessRequest{RequesterName: "PeerB", Timestamp: 5})
	require.NoError(t, err)
	require.True(t, reply.GetGranted())
	require.Equal(t, int64(6), reply.GetTimestamp())
	require.Equal(t, "PeerB", eng.handledRequester)
	require.Equal(t, uint64(5), eng.handledTimestamp)
}

func TestReceiveReplyDispatchesToEngine(t *testing.T) {
	client, eng, _, cleanup := startTestServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := client.ReceiveReply(ctx, &mutexpb.ReplyMessage{SenderName: "PeerC", Permission: true})
	require.NoError(t, err)
	require.Equal(t, "PeerC", eng.repliedSender)
	require.True(t, eng.repliedPermission)
}

func TestHeartbeatDispatchesToDetector(t *testing.T) {
	client, _, det, cleanup := startTestServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := client.Heartbeat(ctx, &mutexpb.HeartbeatMessage{SenderName: "PeerD"})
	require.NoError(t, err)
	require.Equal(t, "PeerD", det.heartbeatSender)
}
