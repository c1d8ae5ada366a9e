// Package engine implements the Ricart-Agrawala mutual-exclusion state
// machine: RELEASED/WANTED/HELD transitions, the Lamport-ordered
// deferred-reply queue, and the quorum counter that the failure
// detector credits as peers are pruned.
package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/distsys/ricart-agrawala/clock"
)

// State is one of RELEASED, WANTED, HELD.
type State int

const (
	Released State = iota
	Wanted
	Held
)

func (s State) String() string {
	switch s {
	case Released:
		return "RELEASED"
	case Wanted:
		return "WANTED"
	case Held:
		return "HELD"
	default:
		return "UNKNOWN"
	}
}

// infinity is the +∞ sentinel for request_timestamp when the peer is
// not WANTED.
const infinity = ^uint64(0)

// Sentinel errors surfaced only through logging: the engine never
// returns an error across the RPC boundary.
var (
	ErrNotReleased = errors.New("request_access called while not RELEASED")
	ErrNotHeld     = errors.New("release_access called while not HELD")
)

// Messenger is the outbound half of the Messaging Layer
// that the engine depends on. Implemented by messaging.Layer; kept as
// an interface here so engine has no import-time dependency on gRPC or
// naming.
type Messenger interface {
	// SendRequest performs the REQUEST/response round trip and returns
	// the peer's piggybacked Lamport clock. The engine folds transport
	// failure into active-peer removal itself; SendRequest need only
	// report the error.
	SendRequest(target, requesterName string, timestamp uint64) (peerClock uint64, err error)
	// SendReply is fire-and-forget; the caller does not inspect the result.
	SendReply(target, selfName string, permission bool)
}

// Metrics is the subset of observability the engine emits into. A
// no-op implementation is used when metrics are not wired, e.g. in
// unit tests.
type Metrics interface {
	SetActivePeers(n int)
	SetReplyCount(n int)
	IncCSHold()
	ObserveCSHoldDuration(seconds float64)
	IncPeerRemoved()
	IncPeerReadmitted()
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) SetActivePeers(int)            {}
func (NopMetrics) SetReplyCount(int)             {}
func (NopMetrics) IncCSHold()                    {}
func (NopMetrics) ObserveCSHoldDuration(float64)  {}
func (NopMetrics) IncPeerRemoved()                {}
func (NopMetrics) IncPeerReadmitted()             {}

// Engine is one peer's mutual-exclusion state machine. All exported
// methods are safe for concurrent use.
type Engine struct {
	name         string
	allPeerNames []string

	clock     *clock.Clock
	messenger Messenger
	metrics   Metrics
	log       *logrus.Entry

	quorumPoll time.Duration

	mu               sync.Mutex
	state            State
	requestTimestamp uint64
	replyCount       int
	deferred         []deferredEntry
	activePeers      map[string]struct{}

	releasing atomic.Bool

	stopOnce sync.Once
	stopCh   chan struct{}
}

// New constructs an Engine for peer name, given the full universe of
// other peer names. quorumPoll is the ~100ms poll cadence; a zero
// value defaults to 100ms.
func New(name string, allPeerNames []string, messenger Messenger, metrics Metrics, log *logrus.Entry, quorumPoll time.Duration) *Engine {
	if quorumPoll <= 0 {
		quorumPoll = 100 * time.Millisecond
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	active := make(map[string]struct{}, len(allPeerNames))
	for _, p := range allPeerNames {
		if p == name {
			continue
		}
		active[p] = struct{}{}
	}
	peers := make([]string, 0, len(active))
	for p := range active {
		peers = append(peers, p)
	}
	return &Engine{
		name:             name,
		allPeerNames:     peers,
		clock:            &clock.Clock{},
		messenger:        messenger,
		metrics:          metrics,
		log:              log.WithField("component", "engine"),
		quorumPoll:       quorumPoll,
		state:            Released,
		requestTimestamp: infinity,
		activePeers:      active,
		stopCh:           make(chan struct{}),
	}
}

// Name returns the peer's own identity.
func (e *Engine) Name() string { return e.name }

// State returns the current RELEASED/WANTED/HELD state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ActivePeers returns a sorted snapshot of peers currently believed alive.
func (e *Engine) ActivePeers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activePeersLocked()
}

func (e *Engine) activePeersLocked() []string {
	out := make([]string, 0, len(e.activePeers))
	for p := range e.activePeers {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// RequestAccess implements request_access. Returns false
// with no side effects if the peer is not RELEASED.
func (e *Engine) RequestAccess(duration time.Duration) bool {
	e.mu.Lock()
	if e.state != Released {
		e.mu.Unlock()
		e.log.WithError(ErrNotReleased).Warn("request_access rejected")
		return false
	}
	ts := e.clock.Tick()
	e.requestTimestamp = ts
	e.state = Wanted
	e.replyCount = 1
	peersToWait := e.activePeersLocked()
	e.mu.Unlock()

	e.metrics.SetReplyCount(1)
	e.log.WithFields(logrus.Fields{"timestamp": ts, "peers": len(peersToWait)}).
		Info("requesting critical section access")

	for _, p := range peersToWait {
		go e.dispatchRequest(p, ts)
	}
	go e.waitForQuorum(duration)
	return true
}

func (e *Engine) dispatchRequest(peer string, timestamp uint64) {
	peerClock, err := e.messenger.SendRequest(peer, e.name, timestamp)
	if err != nil {
		e.log.WithError(err).WithField("peer", peer).Warn("REQUEST send failed, removing peer")
		e.RemovePeer(peer)
		return
	}
	e.clock.Observe(peerClock)
}

// waitForQuorum is the dedicated task that polls at
// ~100ms, then decide once, under lock, whether to enter the critical
// section or abort back to RELEASED.
func (e *Engine) waitForQuorum(duration time.Duration) {
	ticker := time.NewTicker(e.quorumPoll)
	defer ticker.Stop()

	for {
		e.mu.Lock()
		needed := len(e.activePeers) + 1
		reached := e.replyCount >= needed
		e.mu.Unlock()
		if reached {
			break
		}
		select {
		case <-e.stopCh:
			return
		case <-ticker.C:
		}
	}

	e.mu.Lock()
	needed := len(e.activePeers) + 1
	if e.replyCount >= needed && e.state == Wanted {
		e.mu.Unlock()
		e.enterCriticalSection(duration)
		return
	}
	if e.state == Wanted {
		e.log.WithFields(logrus.Fields{"reply_count": e.replyCount, "needed": needed}).
			Warn("quorum wait failed, releasing request")
		e.state = Released
		e.requestTimestamp = infinity
		e.replyCount = 0
	}
	e.mu.Unlock()
}

// enterCriticalSection moves the engine into HELD and runs the hold timer.
func (e *Engine) enterCriticalSection(duration time.Duration) {
	e.mu.Lock()
	e.state = Held
	e.replyCount = 0
	e.releasing.Store(false)
	e.mu.Unlock()

	start := time.Now()
	e.metrics.IncCSHold()
	e.log.WithField("duration", duration).Info("entered critical section")

	timer := time.NewTimer(duration)
	ticker := time.NewTicker(e.quorumPoll)
	defer timer.Stop()
	defer ticker.Stop()

loop:
	for {
		if e.releasing.Load() {
			break loop
		}
		select {
		case <-timer.C:
			e.log.Warn("critical section hold expired")
			e.releasing.Store(true)
			break loop
		case <-e.stopCh:
			break loop
		case <-ticker.C:
		}
	}

	e.metrics.ObserveCSHoldDuration(time.Since(start).Seconds())
	e.exitCriticalSection()
}

// exitCriticalSection moves the engine back to RELEASED and drains the
// deferred-reply queue.
func (e *Engine) exitCriticalSection() {
	e.releasing.Store(false)

	e.mu.Lock()
	e.state = Released
	e.requestTimestamp = infinity
	deferred := e.deferred
	e.deferred = nil
	e.mu.Unlock()

	e.log.WithField("deferred", len(deferred)).Info("exited critical section")
	for _, d := range deferred {
		go e.sendReply(d.name)
	}
}

func (e *Engine) sendReply(target string) {
	e.messenger.SendReply(target, e.name, true)
}

// ReleaseAccess implements release_access.
func (e *Engine) ReleaseAccess() {
	e.mu.Lock()
	held := e.state == Held
	e.mu.Unlock()
	if held {
		e.releasing.Store(true)
		return
	}
	e.log.WithError(ErrNotHeld).Info("release_access ignored")
}

// HandleRequest implements handle_request. Returns the
// receiver's Lamport clock after folding in requesterTimestamp, purely
// as an RPC-level acknowledgement value — the protocol REPLY, if any,
// is dispatched separately via sendReply.
func (e *Engine) HandleRequest(requesterName string, requesterTimestamp uint64) uint64 {
	ts := e.clock.Observe(requesterTimestamp)

	replyImmediately := false
	e.mu.Lock()
	switch e.state {
	case Held:
		// defer unconditionally
	case Wanted:
		mine := priority{timestamp: e.requestTimestamp, name: e.name}
		theirs := priority{timestamp: requesterTimestamp, name: requesterName}
		if theirs.less(mine) {
			replyImmediately = true
		}
	default: // Released
		replyImmediately = true
	}
	if !replyImmediately {
		e.deferred = insertDeferred(e.deferred, deferredEntry{timestamp: requesterTimestamp, name: requesterName})
		e.log.WithFields(logrus.Fields{"requester": requesterName, "queue_len": len(e.deferred)}).
			Debug("deferring request")
	}
	e.mu.Unlock()

	if replyImmediately {
		go e.sendReply(requesterName)
	}
	return ts
}

// ReceiveReply implements receive_reply. permission is the reserved
// boolean from the wire protocol: false is accepted and ignored.
func (e *Engine) ReceiveReply(senderName string, permission bool) {
	if !permission {
		e.log.WithField("sender", senderName).Debug("REPLY carried permission=false, ignored")
		return
	}
	e.mu.Lock()
	if e.state != Wanted {
		e.mu.Unlock()
		e.log.WithField("sender", senderName).Debug("late REPLY ignored, not WANTED")
		return
	}
	e.replyCount++
	n := e.replyCount
	e.mu.Unlock()
	e.metrics.SetReplyCount(n)
	e.log.WithFields(logrus.Fields{"sender": senderName, "reply_count": n}).Debug("REPLY received")
}

// RemovePeer drops a peer from active_peers, crediting reply_count if
// this peer is currently WANTED.
func (e *Engine) RemovePeer(name string) {
	e.mu.Lock()
	if _, ok := e.activePeers[name]; !ok {
		e.mu.Unlock()
		return
	}
	delete(e.activePeers, name)
	wanted := e.state == Wanted
	if wanted {
		// Independent of ReceiveReply: if the removed peer's REPLY
		// still arrives while WANTED, it is credited a second time.
		// The quorum check only tests reply_count >= needed.
		e.replyCount++
	}
	activeCount := len(e.activePeers)
	replyCount := e.replyCount
	e.mu.Unlock()

	e.metrics.SetActivePeers(activeCount)
	e.metrics.IncPeerRemoved()
	if wanted {
		e.metrics.SetReplyCount(replyCount)
	}
	e.log.WithField("peer", name).Warn("peer removed (failure/timeout)")
}

// Readmit re-adds a previously-removed peer on renewed contact
//. No-op for unknown names or
// peers already active.
func (e *Engine) Readmit(name string) {
	known := false
	for _, p := range e.allPeerNames {
		if p == name {
			known = true
			break
		}
	}
	if !known {
		return
	}
	e.mu.Lock()
	if _, ok := e.activePeers[name]; ok {
		e.mu.Unlock()
		return
	}
	e.activePeers[name] = struct{}{}
	activeCount := len(e.activePeers)
	e.mu.Unlock()

	e.metrics.SetActivePeers(activeCount)
	e.metrics.IncPeerReadmitted()
	e.log.WithField("peer", name).Info("peer re-detected, re-admitted")
}

// AllPeerNames returns the static universe, excluding self.
func (e *Engine) AllPeerNames() []string {
	out := make([]string, len(e.allPeerNames))
	copy(out, e.allPeerNames)
	return out
}

// Stopped reports whether Stop has been called, for background loops
// owned by other components (e.g. the failure detector) that need to
// observe the same cooperative shutdown signal.
func (e *Engine) Stopped() <-chan struct{} {
	return e.stopCh
}

// Stop terminates the engine's background waiter/hold loops
// cooperatively.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
	})
}
