package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nammareport/backend/internal/models"
	"nammareport/backend/internal/report"
)

func sampleTicket() *models.Ticket {
	createdAt := time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)
	return &models.Ticket{
		ID:           "TKT-12345",
		CreatedAt:    createdAt,
		Category:     models.CategoryAsphaltDeterioration,
		Priority:     models.PriorityHigh,
		Reason:       "Severity Level 4 crater.",
		Location:     models.Location{Lat: 12.9240, Lon: 77.4990},
		Status:       models.StatusOpen,
		IntegrityTag: models.ComputeIntegrityTag(models.CategoryAsphaltDeterioration, createdAt),
	}
}

// TestRenderDocument_Pure verifies repeated renders of the same ticket state
// are byte-identical.
func TestRenderDocument_Pure(t *testing.T) {
	ticket := sampleTicket()

	first, err := report.RenderDocument(ticket)
	assert.NoError(t, err)
	second, err := report.RenderDocument(ticket)
	assert.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "same ticket state must render identical bytes")
}

// TestRenderDocument_ValidPDF verifies the output is a non-trivial PDF buffer.
func TestRenderDocument_ValidPDF(t *testing.T) {
	data, err := report.RenderDocument(sampleTicket())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output must start with a PDF header")
	assert.Greater(t, len(data), 500)
}

// TestRenderDocument_ReflectsState verifies a status change produces a
// different document.
func TestRenderDocument_ReflectsState(t *testing.T) {
	open := sampleTicket()
	openDoc, err := report.RenderDocument(open)
	assert.NoError(t, err)

	resolved := sampleTicket()
	resolved.Status = models.StatusResolved
	resolvedDoc, err := report.RenderDocument(resolved)
	assert.NoError(t, err)

	assert.False(t, bytes.Equal(openDoc, resolvedDoc))
}

// TestRenderDocument_WithoutIntegrityTag verifies the tag line is optional.
func TestRenderDocument_WithoutIntegrityTag(t *testing.T) {
	ticket := sampleTicket()
	ticket.IntegrityTag = ""

	tagged, err := report.RenderDocument(sampleTicket())
	assert.NoError(t, err)
	plain, err := report.RenderDocument(ticket)
	assert.NoError(t, err)

	assert.False(t, bytes.Equal(tagged, plain))
}

// TestDocumentFilename verifies the download naming convention.
func TestDocumentFilename(t *testing.T) {
	assert.Equal(t, "TKT-12345.pdf", report.DocumentFilename(sampleTicket()))
}
