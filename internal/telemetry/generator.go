// Package telemetry fabricates the dashboard readings shown on the admin
// view and pushes them to connected dashboards over WebSocket. The values are
// display-only: there are no real sensors behind them.
package telemetry

import (
	"time"

	"nammareport/backend/internal/models"
)

const aqiSeriesLen = 20

// Rand is the randomness source for fabricated readings.
type Rand interface {
	Intn(n int) int
}

// Generator produces telemetry snapshots from an injected randomness source.
type Generator struct {
	Now func() time.Time

	rng Rand
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{Now: time.Now, rng: rng}
}

// Snapshot fabricates one set of dashboard readings: sensors online, a
// 20-point AQI series in [60, 150) and a predicted incident count.
func (g *Generator) Snapshot() models.TelemetrySnapshot {
	series := make([]int, aqiSeriesLen)
	for i := range series {
		series[i] = g.rng.Intn(90) + 60
	}
	return models.TelemetrySnapshot{
		SensorsOnline:      g.rng.Intn(5) + 6,
		AQISeries:          series,
		PredictedIncidents: g.rng.Intn(10) + 1,
		GeneratedAt:        g.Now(),
	}
}
