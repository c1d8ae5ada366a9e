package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderExposesSeriesOnScrape(t *testing.T) {
	r := New("PeerA")
	r.SetActivePeers(2)
	r.SetReplyCount(1)
	r.IncCSHold()
	r.ObserveCSHoldDuration(0.5)
	r.IncPeerRemoved()
	r.IncPeerReadmitted()
	r.IncHeartbeatSent()
	r.IncHeartbeatReceived()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ricart_agrawala_active_peers")
	assert.Contains(t, body, "ricart_agrawala_cs_holds_total")
	assert.Contains(t, body, `peer="PeerA"`)
}
