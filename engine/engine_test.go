package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMessenger simulates peers that always grant immediately, useful
// for driving the quorum-wait loop without real transport.
type fakeMessenger struct {
	mu      sync.Mutex
	calls   []string
	failing map[string]bool
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{failing: map[string]bool{}}
}

func (f *fakeMessenger) SendRequest(target, requesterName string, timestamp uint64) (uint64, error) {
	f.mu.Lock()
	f.calls = append(f.calls, target)
	fail := f.failing[target]
	f.mu.Unlock()
	if fail {
		return 0, assertErr
	}
	return timestamp, nil
}

func (f *fakeMessenger) SendReply(target, selfName string, permission bool) {}

var assertErr = errTransport{}

type errTransport struct{}

func (errTransport) Error() string { return "simulated transport failure" }

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}

func TestRequestAccessSinglePeerUniverse(t *testing.T) {
	// Scenario 1: PeerA alone, immediate HELD.
	e := New("PeerA", nil, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	ok := e.RequestAccess(30 * time.Millisecond)
	require.True(t, ok)

	require.Eventually(t, func() bool { return e.State() == Held }, 200*time.Millisecond, 2*time.Millisecond)
	require.Eventually(t, func() bool { return e.State() == Released }, 500*time.Millisecond, 5*time.Millisecond)
}

func TestRequestAccessRejectedWhenNotReleased(t *testing.T) {
	e := New("PeerA", []string{"PeerB"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	ok := e.RequestAccess(time.Second)
	require.True(t, ok)
	require.Equal(t, Wanted, e.State())

	ok = e.RequestAccess(time.Second)
	assert.False(t, ok)
}

func TestHandleRequestPriorityTiebreak(t *testing.T) {
	// Scenario 3: both WANTED at T=1; lexicographically smaller name wins.
	e := New("PeerA", []string{"PeerB"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	e.mu.Lock()
	e.state = Wanted
	e.requestTimestamp = 1
	e.mu.Unlock()

	ts := e.HandleRequest("PeerB", 1)
	assert.Equal(t, uint64(2), ts) // clock.Observe(1) on a fresh clock -> 2

	e.mu.Lock()
	deferredLen := len(e.deferred)
	e.mu.Unlock()
	// PeerB's request loses to PeerA's (1, PeerA) < (1, PeerB): deferred.
	assert.Equal(t, 1, deferredLen)
}

func TestHandleRequestHigherPriorityRequesterWinsImmediateReply(t *testing.T) {
	e := New("PeerB", []string{"PeerA"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	e.mu.Lock()
	e.state = Wanted
	e.requestTimestamp = 1
	e.mu.Unlock()

	// PeerA's (1, PeerA) < PeerB's own (1, PeerB): PeerA wins, no defer.
	e.HandleRequest("PeerA", 1)

	e.mu.Lock()
	defer e.mu.Unlock()
	assert.Empty(t, e.deferred)
}

func TestDeferredQueueSortedNoDuplicates(t *testing.T) {
	e := New("PeerA", []string{"PeerB", "PeerC"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	e.mu.Lock()
	e.state = Held
	e.mu.Unlock()

	e.HandleRequest("PeerB", 5)
	e.HandleRequest("PeerC", 3)
	e.HandleRequest("PeerB", 4) // re-request from B replaces, not duplicates

	e.mu.Lock()
	defer e.mu.Unlock()
	require.Len(t, e.deferred, 2)
	assert.Equal(t, "PeerC", e.deferred[0].name)
	assert.Equal(t, uint64(3), e.deferred[0].timestamp)
	assert.Equal(t, "PeerB", e.deferred[1].name)
	assert.Equal(t, uint64(4), e.deferred[1].timestamp)
}

func TestReceiveReplyOnlyCountsWhileWanted(t *testing.T) {
	e := New("PeerA", []string{"PeerB"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	// Released: late REPLY ignored.
	e.ReceiveReply("PeerB", true)
	assert.Equal(t, 0, e.replyCount)

	e.mu.Lock()
	e.state = Wanted
	e.replyCount = 1
	e.mu.Unlock()

	e.ReceiveReply("PeerB", true)
	assert.Equal(t, 2, e.replyCount)

	// permission=false never increments.
	e.ReceiveReply("PeerC", false)
	assert.Equal(t, 2, e.replyCount)
}

func TestRemovePeerCreditsReplyCountWhileWanted(t *testing.T) {
	e := New("PeerA", []string{"PeerB", "PeerC"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	e.mu.Lock()
	e.state = Wanted
	e.replyCount = 1
	e.mu.Unlock()

	e.RemovePeer("PeerC")

	e.mu.Lock()
	defer e.mu.Unlock()
	assert.Equal(t, 2, e.replyCount)
	_, stillActive := e.activePeers["PeerC"]
	assert.False(t, stillActive)
}

func TestRemovePeerUnknownIsNoop(t *testing.T) {
	e := New("PeerA", []string{"PeerB"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	e.RemovePeer("PeerZ")
	assert.Len(t, e.ActivePeers(), 1)
}

func TestReadmitRestoresActivePeer(t *testing.T) {
	e := New("PeerA", []string{"PeerB"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	e.RemovePeer("PeerB")
	assert.Empty(t, e.ActivePeers())

	e.Readmit("PeerB")
	assert.Equal(t, []string{"PeerB"}, e.ActivePeers())
}

func TestReadmitUnknownNameIgnored(t *testing.T) {
	e := New("PeerA", []string{"PeerB"}, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	e.Readmit("PeerZ")
	assert.Equal(t, []string{"PeerB"}, e.ActivePeers())
}

func TestReleaseAccessNoopWhenNotHeld(t *testing.T) {
	e := New("PeerA", nil, newFakeMessenger(), nil, testLogger(), 5*time.Millisecond)
	e.ReleaseAccess() // should just log, not panic
	assert.Equal(t, Released, e.State())
}

func TestLateReplyAfterReleaseIsIgnored(t *testing.T) {
	// Scenario 6: A requests, enters HELD, releases, then a slow REPLY
	// from B arrives after release — must not be counted.
	e := New("PeerA", []string{"PeerB"}, newFakeMessenger(), nil, testLogger(), 2*time.Millisecond)
	ok := e.RequestAccess(3 * time.Millisecond)
	require.True(t, ok)

	e.ReceiveReply("PeerB", true) // pushes reply_count to 2 == needed
	require.Eventually(t, func() bool { return e.State() == Held }, 100*time.Millisecond, 1*time.Millisecond)
	require.Eventually(t, func() bool { return e.State() == Released }, 200*time.Millisecond, 1*time.Millisecond)

	e.ReceiveReply("PeerB", true) // late, must be ignored
	assert.Equal(t, 0, e.replyCount)
}

func TestPriorityTiebreakOrdering(t *testing.T) {
	a := priority{timestamp: 1, name: "PeerA"}
	b := priority{timestamp: 1, name: "PeerB"}
	assert.True(t, a.less(b))
	assert.False(t, b.less(a))

	c := priority{timestamp: 0, name: "PeerZ"}
	assert.True(t, c.less(a))
}

func TestStop(t *testing.T) {
	e := New("PeerA", []string{"PeerB"}, newFakeMessenger(), nil, testLogger(), 2*time.Millisecond)
	e.Stop()
	select {
	case <-e.Stopped():
	default:
		t.Fatal("expected stop channel closed")
	}
}
