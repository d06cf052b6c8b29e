package mapping

import (
	"strings"

	"lifecast/internal/types"
)

// Explicit level mentions in a choice description take precedence over
// experience-based inference.
var levelKeywords = []struct {
	keywords []string
	level    types.PositionLevel
}{
	{[]string{"ceo", "cto", "vp", "executive", "director"}, types.LevelExecutive},
	{[]string{"lead", "principal", "staff"}, types.LevelLead},
	{[]string{"senior", "sr."}, types.LevelSenior},
	{[]string{"junior", "jr.", "entry"}, types.LevelEntry},
}

// InferPositionLevel determines the seniority rung from a choice description,
// falling back to experience-based thresholds when the text says nothing.
func InferPositionLevel(description string, yearsExperience float64) types.PositionLevel {
	lower := strings.ToLower(description)
	for _, group := range levelKeywords {
		if containsAny(lower, group.keywords) {
			return group.level
		}
	}

	switch {
	case yearsExperience < 3:
		return types.LevelEntry
	case yearsExperience < 6:
		return types.LevelMid
	case yearsExperience < 10:
		return types.LevelSenior
	case yearsExperience < 15:
		return types.LevelLead
	default:
		return types.LevelExecutive
	}
}
