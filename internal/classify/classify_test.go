package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nammareport/backend/internal/classify"
	"nammareport/backend/internal/models"
)

// TestClassify_Rules verifies each keyword rule and the fallback.
func TestClassify_Rules(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		category models.Category
		priority models.Priority
	}{
		{"Pothole", "pothole_mg_road.jpg", models.CategoryAsphaltDeterioration, models.PriorityHigh},
		{"Garbage", "garbage_pile.png", models.CategoryWasteAccumulation, models.PriorityMedium},
		{"Streetlight", "broken_light.jpg", models.CategoryStreetlightFailure, models.PriorityMedium},
		{"Pipe", "burst_pipe.png", models.CategoryWaterMainRupture, models.PriorityHigh},
		{"Fallback", "selfie.jpg", models.CategoryCivicAnomaly, models.PriorityLow},
		{"EmptyExtension", "pipe", models.CategoryWaterMainRupture, models.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := classify.Classify(tt.filename)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.priority, res.Priority)
			assert.NotEmpty(t, res.Reason)
		})
	}
}

// TestClassify_CaseInsensitive verifies matching ignores filename casing.
func TestClassify_CaseInsensitive(t *testing.T) {
	res := classify.Classify("POTHOLE.JPG")
	assert.Equal(t, models.CategoryAsphaltDeterioration, res.Category)
	assert.Equal(t, models.PriorityHigh, res.Priority)
}

// TestClassify_RuleOrder verifies the first matching rule wins when a
// filename contains several keywords.
func TestClassify_RuleOrder(t *testing.T) {
	// "pothole" is checked before "light".
	res := classify.Classify("pothole_light.jpg")
	assert.Equal(t, models.CategoryAsphaltDeterioration, res.Category)

	// "garbage" is checked before "pothole", regardless of position in the name.
	res = classify.Classify("garbage_pothole.png")
	assert.Equal(t, models.CategoryWasteAccumulation, res.Category)
	assert.Equal(t, models.PriorityMedium, res.Priority)
}

// TestClassify_Deterministic verifies repeated calls agree.
func TestClassify_Deterministic(t *testing.T) {
	first := classify.Classify("water_pipe_leak.jpg")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classify.Classify("water_pipe_leak.jpg"))
	}
}
