package models_test

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nammareport/backend/internal/models"
)

// TestNewTicketID_Format verifies every generated id is TKT- plus exactly
// five digits, across many draws.
func TestNewTicketID_Format(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pattern := regexp.MustCompile(`^TKT-\d{5}$`)

	for i := 0; i < 1000; i++ {
		id := models.NewTicketID(rng)
		assert.Regexp(t, pattern, id)
	}
}

// TestComputeIntegrityTag verifies the tag is deterministic in its inputs
// and changes when either input changes.
func TestComputeIntegrityTag(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)

	tag := models.ComputeIntegrityTag(models.CategoryWasteAccumulation, createdAt)
	assert.Equal(t, tag, models.ComputeIntegrityTag(models.CategoryWasteAccumulation, createdAt))
	assert.Regexp(t, `^0x[0-9a-f]{16}$`, tag)

	otherCategory := models.ComputeIntegrityTag(models.CategoryCivicAnomaly, createdAt)
	assert.NotEqual(t, tag, otherCategory)

	otherTime := models.ComputeIntegrityTag(models.CategoryWasteAccumulation, createdAt.Add(time.Second))
	assert.NotEqual(t, tag, otherTime)
}

// TestPrincipal_IsAdmin verifies the derived admin role.
func TestPrincipal_IsAdmin(t *testing.T) {
	tests := []struct {
		name      string
		principal models.Principal
		want      bool
	}{
		{"VerifiedAdminNumber", models.Principal{MobileNumber: "9999999999", Verified: true}, true},
		{"UnverifiedAdminNumber", models.Principal{MobileNumber: "9999999999"}, false},
		{"VerifiedOtherNumber", models.Principal{MobileNumber: "9876543210", Verified: true}, false},
		{"Zero", models.Principal{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.principal.IsAdmin("9999999999"))
		})
	}
}
