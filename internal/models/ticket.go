package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Category is the issue class assigned to a report at creation.
type Category string

const (
	CategoryAsphaltDeterioration Category = "Asphalt Deterioration"
	CategoryWasteAccumulation    Category = "Waste Accumulation"
	CategoryStreetlightFailure   Category = "Streetlight Failure"
	CategoryWaterMainRupture     Category = "Water Main Rupture"
	CategoryCivicAnomaly         Category = "Civic Anomaly"
)

// Priority is the triage urgency assigned to a report at creation.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status is the ticket lifecycle state. Transitions are one-way: Open → Resolved.
type Status string

const (
	StatusOpen     Status = "Open"
	StatusResolved Status = "Resolved"
)

// Location is a coordinate pair. One fixed pair per deployment.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Ticket is a single reported civic issue. All fields except Status are set
// once at creation and never change.
type Ticket struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Category     Category  `json:"category"`
	Priority     Priority  `json:"priority"`
	Reason       string    `json:"reason"`
	Location     Location  `json:"location"`
	Status       Status    `json:"status"`
	IntegrityTag string    `json:"integrity_tag,omitempty"`
}

// Rand is the randomness source used for id and code generation. *rand.Rand
// satisfies it; tests supply a fixed seed.
type Rand interface {
	Intn(n int) int
}

// NewTicketID returns a fresh id of the form TKT-<5 digits>. The suffix is
// random, so collisions within a session are possible but accepted.
func NewTicketID(rng Rand) string {
	return fmt.Sprintf("TKT-%d", rng.Intn(90000)+10000)
}

// ComputeIntegrityTag derives the display-only fingerprint attached to a
// ticket at creation. It covers only the category and creation time and is
// never re-verified against ticket fields on any read path.
func ComputeIntegrityTag(category Category, createdAt time.Time) string {
	sum := sha256.Sum256([]byte(string(category) + "|" + createdAt.UTC().Format(time.RFC3339)))
	return "0x" + hex.EncodeToString(sum[:8])
}
