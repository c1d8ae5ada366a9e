package detector

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	mu       sync.Mutex
	name     string
	all      []string
	active   map[string]bool
	removed  []string
	readmitted []string
	stopCh   chan struct{}
}

func newFakeEngine(name string, all []string) *fakeEngine {
	active := make(map[string]bool, len(all))
	for _, p := range all {
		active[p] = true
	}
	return &fakeEngine{name: name, all: all, active: active, stopCh: make(chan struct{})}
}

func (f *fakeEngine) Name() string          { return f.name }
func (f *fakeEngine) AllPeerNames() []string { return f.all }
func (f *fakeEngine) ActivePeers() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for p, ok := range f.active {
		if ok {
			out = append(out, p)
		}
	}
	return out
}
func (f *fakeEngine) RemovePeer(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active[name] = false
	f.removed = append(f.removed, name)
}
func (f *fakeEngine) Readmit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active[name] = true
	f.readmitted = append(f.readmitted, name)
}
func (f *fakeEngine) Stopped() <-chan struct{} { return f.stopCh }

type fakeHeartbeater struct {
	mu    sync.Mutex
	sent  []string
}

func (f *fakeHeartbeater) SendHeartbeat(target, self string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, target)
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}

func TestHandleHeartbeatReadmitsAndRecordsContact(t *testing.T) {
	eng := newFakeEngine("PeerA", []string{"PeerB"})
	eng.RemovePeer("PeerB")
	d := New(eng, &fakeHeartbeater{}, NopMetrics{}, testLogger(), time.Hour, time.Hour)

	d.HandleHeartbeat("PeerB")

	assert.Equal(t, []string{"PeerB"}, eng.readmitted)
	d.mu.Lock()
	_, seen := d.lastContact["PeerB"]
	d.mu.Unlock()
	assert.True(t, seen)
}

func TestScanOnceRemovesSilentPeer(t *testing.T) {
	eng := newFakeEngine("PeerA", []string{"PeerB"})
	d := New(eng, &fakeHeartbeater{}, NopMetrics{}, testLogger(), time.Millisecond, time.Millisecond)

	d.mu.Lock()
	d.lastContact["PeerB"] = time.Now().Add(-time.Hour)
	d.mu.Unlock()

	d.scanOnce()

	assert.Contains(t, eng.removed, "PeerB")
}

func TestScanOnceKeepsRecentlyContactedPeer(t *testing.T) {
	eng := newFakeEngine("PeerA", []string{"PeerB"})
	d := New(eng, &fakeHeartbeater{}, NopMetrics{}, testLogger(), time.Hour, time.Hour)

	d.scanOnce()

	assert.Empty(t, eng.removed)
}

func TestSenderLoopBroadcastsToFullUniverseNotJustActive(t *testing.T) {
	eng := newFakeEngine("PeerA", []string{"PeerB", "PeerC"})
	eng.RemovePeer("PeerC") // PeerC inactive, but still in all_peer_names

	hb := &fakeHeartbeater{}
	d := New(eng, hb, NopMetrics{}, testLogger(), 5*time.Millisecond, time.Hour)
	d.Start()
	defer d.Stop()

	require.Eventually(t, func() bool {
		hb.mu.Lock()
		defer hb.mu.Unlock()
		seenB, seenC := false, false
		for _, p := range hb.sent {
			if p == "PeerB" {
				seenB = true
			}
			if p == "PeerC" {
				seenC = true
			}
		}
		return seenB && seenC
	}, 200*time.Millisecond, 5*time.Millisecond)
}

func TestStopTerminatesLoops(t *testing.T) {
	eng := newFakeEngine("PeerA", []string{"PeerB"})
	d := New(eng, &fakeHeartbeater{}, NopMetrics{}, testLogger(), 5*time.Millisecond, 10*time.Millisecond)
	d.Start()
	d.Stop() // must return, proving both goroutines exited
}
