package models

import "time"

// TelemetrySnapshot carries the fabricated dashboard readings shown on the
// admin view. The values have no backing data source.
type TelemetrySnapshot struct {
	SensorsOnline      int       `json:"sensors_online"`
	AQISeries          []int     `json:"aqi_series"`
	PredictedIncidents int       `json:"predicted_incidents"`
	GeneratedAt        time.Time `json:"generated_at"`
}
