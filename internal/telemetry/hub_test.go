package telemetry_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nammareport/backend/internal/models"
	"nammareport/backend/internal/telemetry"
)

// fakeClient implements telemetry.Client for hub tests.
type fakeClient struct {
	send   chan models.TelemetrySnapshot
	closed chan struct{}
}

func newFakeClient(buffer int) *fakeClient {
	return &fakeClient{
		send:   make(chan models.TelemetrySnapshot, buffer),
		closed: make(chan struct{}),
	}
}

func (f *fakeClient) GetSendChannel() chan<- models.TelemetrySnapshot { return f.send }
func (f *fakeClient) Run()                                            {}
func (f *fakeClient) Close()                                          { close(f.closed) }

// TestHub_BroadcastsSnapshots verifies a registered client receives pushes.
func TestHub_BroadcastsSnapshots(t *testing.T) {
	hub := telemetry.NewHub(telemetry.NewGenerator(rand.New(rand.NewSource(1))), 10*time.Millisecond)
	go hub.Run()

	client := newFakeClient(4)
	hub.RegisterCh <- client

	select {
	case snap := <-client.send:
		assert.Len(t, snap.AQISeries, 20)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a telemetry push")
	}
}

// TestHub_UnregisterClosesClient verifies unregistering closes the client.
func TestHub_UnregisterClosesClient(t *testing.T) {
	hub := telemetry.NewHub(telemetry.NewGenerator(rand.New(rand.NewSource(2))), time.Hour)
	go hub.Run()

	client := newFakeClient(1)
	hub.RegisterCh <- client
	hub.UnregisterCh <- client

	select {
	case <-client.closed:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for client close")
	}
}

// TestHub_DropsSlowConsumer verifies a full send channel gets the client
// evicted instead of stalling the broadcast loop.
func TestHub_DropsSlowConsumer(t *testing.T) {
	hub := telemetry.NewHub(telemetry.NewGenerator(rand.New(rand.NewSource(3))), 5*time.Millisecond)
	go hub.Run()

	slow := newFakeClient(0) // unbuffered and never read
	hub.RegisterCh <- slow

	select {
	case <-slow.closed:
	case <-time.After(time.Second):
		t.Fatal("slow consumer was not evicted")
	}
}
