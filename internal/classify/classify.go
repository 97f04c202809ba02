// Package classify maps an uploaded photo's filename to an issue category.
// There is no image analysis: classification is a case-insensitive substring
// match on the filename, evaluated in a fixed order.
package classify

import (
	"strings"

	"nammareport/backend/internal/models"
)

// Result is the (category, priority, rationale) triple produced for a report.
type Result struct {
	Category models.Category
	Priority models.Priority
	Reason   string
}

type rule struct {
	keyword string
	result  Result
}

// Rule order matters: a filename may contain several keywords and the first
// match wins ("garbage_pothole.png" classifies as waste, not asphalt).
var rules = []rule{
	{"pothole", Result{models.CategoryAsphaltDeterioration, models.PriorityHigh, "Severity Level 4 crater."}},
	{"garbage", Result{models.CategoryWasteAccumulation, models.PriorityMedium, "Health hazard detected."}},
	{"light", Result{models.CategoryStreetlightFailure, models.PriorityMedium, "Visibility issue."}},
	{"pipe", Result{models.CategoryWaterMainRupture, models.PriorityHigh, "Significant water loss."}},
}

var fallback = Result{models.CategoryCivicAnomaly, models.PriorityLow, "Manual inspection required."}

// Classify returns the triage result for the given filename.
func Classify(filename string) Result {
	name := strings.ToLower(filename)
	for _, r := range rules {
		if strings.Contains(name, r.keyword) {
			return r.result
		}
	}
	return fallback
}
