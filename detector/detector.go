// Package detector implements the Failure Detector: a heartbeat sender
// broadcasting to the full static universe, a liveness scanner pruning
// silent peers from the engine's active set, and the inbound heartbeat
// handler that re-admits a returning peer. Grounded on
// original_source/peer.py's `_remove_failed_peer`/heartbeat loop
// (reactive there; this package adds the proactive sender/scanner
// loops a production deployment needs) and on the heartbeatTimer/
// heartbeatTicker pattern used for liveness tracking in the pack's
// consensus-engine examples.
package detector

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EngineHandle is the subset of *engine.Engine the detector depends
// on, kept as an interface to avoid a detector->engine compile-time
// cycle beyond what's strictly needed and to ease unit testing.
type EngineHandle interface {
	Name() string
	AllPeerNames() []string
	ActivePeers() []string
	RemovePeer(name string)
	Readmit(name string)
	Stopped() <-chan struct{}
}

// Heartbeater is the outbound half used by the sender loop.
// Implemented by messaging.Layer.
type Heartbeater interface {
	SendHeartbeat(target, selfName string)
}

// Metrics is the observability surface the detector emits into.
type Metrics interface {
	IncHeartbeatSent()
	IncHeartbeatReceived()
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) IncHeartbeatSent()     {}
func (NopMetrics) IncHeartbeatReceived() {}

// Detector owns the heartbeat sender loop, the liveness scanner loop,
// and last_contact bookkeeping for the inbound Heartbeat RPC handler.
type Detector struct {
	engine      EngineHandle
	heartbeater Heartbeater
	metrics     Metrics
	log         *logrus.Entry

	heartbeatInterval time.Duration
	livenessTimeout   time.Duration

	mu          sync.Mutex
	lastContact map[string]time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New constructs a Detector. heartbeatInterval defaults to 2s,
// livenessTimeout to 7s when zero.
func New(engine EngineHandle, heartbeater Heartbeater, metrics Metrics, log *logrus.Entry, heartbeatInterval, livenessTimeout time.Duration) *Detector {
	if heartbeatInterval <= 0 {
		heartbeatInterval = 2 * time.Second
	}
	if livenessTimeout <= 0 {
		livenessTimeout = 7 * time.Second
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	now := time.Now()
	lastContact := make(map[string]time.Time)
	for _, p := range engine.AllPeerNames() {
		lastContact[p] = now
	}
	return &Detector{
		engine:            engine,
		heartbeater:       heartbeater,
		metrics:           metrics,
		log:               log.WithField("component", "detector"),
		heartbeatInterval: heartbeatInterval,
		livenessTimeout:   livenessTimeout,
		lastContact:       lastContact,
		stopCh:            make(chan struct{}),
	}
}

// Start spawns the heartbeat sender and liveness scanner loops. It has
// no guard against repeat calls: each call spawns another pair of loops.
func (d *Detector) Start() {
	d.wg.Add(2)
	go d.senderLoop()
	go d.scannerLoop()
}

func (d *Detector) senderLoop() {
	defer d.wg.Done()
	ticker := time.NewTicker(d.heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stopCh:
			return
		case <-d.engine.Stopped():
			return
		case <-ticker.C:
			for _, p := range d.engine.AllPeerNames() {
				go func(peer string) {
					d.heartbeater.SendHeartbeat(peer, d.engine.Name())
					d.metrics.IncHeartbeatSent()
				}(p)
			}
		}
	}
}

func (d *Detector) scannerLoop() {
	defer d.wg.Done()
	ticker := time.NewTicker(2 * d.heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stopCh:
			return
		case <-d.engine.Stopped():
			return
		case <-ticker.C:
			d.scanOnce()
		}
	}
}

func (d *Detector) scanOnce() {
	now := time.Now()
	for _, p := range d.engine.ActivePeers() {
		d.mu.Lock()
		last, seen := d.lastContact[p]
		d.mu.Unlock()
		if !seen {
			continue
		}
		if now.Sub(last) > d.livenessTimeout {
			d.log.WithField("peer", p).Warn("peer silent past liveness timeout, removing")
			d.engine.RemovePeer(p)
		}
	}
}

// HandleHeartbeat is the inbound fire-and-forget RPC handler: it sets
// last_contact and re-admits sender if it had fallen out of
// active_peers.
func (d *Detector) HandleHeartbeat(sender string) {
	d.mu.Lock()
	d.lastContact[sender] = time.Now()
	d.mu.Unlock()
	d.metrics.IncHeartbeatReceived()
	d.engine.Readmit(sender)
}

// Stop terminates the sender and scanner loops cooperatively
// and waits for them to exit.
func (d *Detector) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)
	})
	d.wg.Wait()
}
