package telemetry

import (
	"log"
	"time"

	"nammareport/backend/internal/models"
)

// Client is a connected dashboard. The hub only ever pushes; clients never
// send telemetry back.
type Client interface {
	// GetSendChannel returns the channel the hub pushes snapshots into.
	GetSendChannel() chan<- models.TelemetrySnapshot
	// Run starts the client's pumps.
	Run()
	// Close shuts the client's send channel down.
	Close()
}

// Hub broadcasts a fresh snapshot to every connected dashboard on a fixed
// interval. All client bookkeeping happens on the Run goroutine, so the
// clients map needs no lock.
type Hub struct {
	RegisterCh   chan Client
	UnregisterCh chan Client

	clients  map[Client]struct{}
	gen      *Generator
	interval time.Duration
}

func NewHub(gen *Generator, interval time.Duration) *Hub {
	return &Hub{
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		clients:      make(map[Client]struct{}),
		gen:          gen,
		interval:     interval,
	}
}

// Run is the hub dispatcher. Call it on its own goroutine.
func (h *Hub) Run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case client := <-h.RegisterCh:
			h.clients[client] = struct{}{}
			log.Printf("telemetry: dashboard connected (%d active)", len(h.clients))

		case client := <-h.UnregisterCh:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
				log.Printf("telemetry: dashboard disconnected (%d active)", len(h.clients))
			}

		case <-ticker.C:
			snapshot := h.gen.Snapshot()
			for client := range h.clients {
				select {
				case client.GetSendChannel() <- snapshot:
				default:
					// Slow consumer: drop it rather than stall the broadcast.
					delete(h.clients, client)
					client.Close()
				}
			}
		}
	}
}
