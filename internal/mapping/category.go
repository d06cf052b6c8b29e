package mapping

import (
	"strings"

	"lifecast/internal/types"
)

// categoryKeywords maps choice-category keywords to career fields. Ordered
// so lookups are deterministic when a category mentions several keywords.
var categoryKeywords = []struct {
	keyword string
	field   types.CareerField
}{
	{"career", types.FieldBusiness},
	{"job", types.FieldBusiness},
	{"technology", types.FieldTechnology},
	{"tech", types.FieldTechnology},
	{"software", types.FieldTechnology},
	{"healthcare", types.FieldHealthcare},
	{"health", types.FieldHealthcare},
	{"medical", types.FieldHealthcare},
	{"finance", types.FieldFinance},
	{"banking", types.FieldFinance},
	{"engineering", types.FieldEngineering},
	{"education", types.FieldEducation},
	{"teaching", types.FieldEducation},
	{"business", types.FieldBusiness},
	{"management", types.FieldBusiness},
	{"creative", types.FieldCreative},
	{"design", types.FieldCreative},
	{"art", types.FieldCreative},
	{"service", types.FieldService},
	{"hospitality", types.FieldService},
}

// MapCategoryToField maps a loose choice category to a CareerField.
// Unrecognized input defaults to other.
func MapCategoryToField(category string) types.CareerField {
	lower := strings.ToLower(category)
	for _, entry := range categoryKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.field
		}
	}
	return types.FieldOther
}
