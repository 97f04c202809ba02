// Package report renders the downloadable incident document for a ticket.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"nammareport/backend/internal/models"
)

const title = "BBMP / RVCE Smart City Report"

// RenderDocument lays out a single-page PDF for the ticket. Output is a pure
// function of ticket state: the document's creation and modification dates
// are pinned to the ticket's creation time, so identical ticket state yields
// byte-identical bytes.
func RenderDocument(t *models.Ticket) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(t.CreatedAt.UTC())
	pdf.SetModificationDate(t.CreatedAt.UTC())
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(200, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(200, 10, fmt.Sprintf("Incident Report: #%s", t.ID), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	line := func(s string) {
		pdf.CellFormat(200, 10, s, "", 1, "L", false, 0, "")
	}
	line("Date: " + t.CreatedAt.Format("2006-01-02 15:04"))
	line("Category: " + string(t.Category))
	line("Priority: " + string(t.Priority))
	line("Status: " + string(t.Status))
	line("Rationale: " + t.Reason)
	line(fmt.Sprintf("Location: %.4f, %.4f", t.Location.Lat, t.Location.Lon))
	if t.IntegrityTag != "" {
		line("Integrity Tag: " + t.IntegrityTag)
	}

	pdf.Ln(20)
	line("Authorized Signature: _______________________")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}

// DocumentFilename is the download name for a ticket's document.
func DocumentFilename(t *models.Ticket) string {
	return t.ID + ".pdf"
}
