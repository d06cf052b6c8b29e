// Package mapping normalizes loose free-text user input into the closed
// enumerations the prediction engine requires. Every parser is a pure
// function that falls back to a documented default rather than failing.
package mapping

import (
	"strings"

	"lifecast/internal/types"
)

// educationKeywords is an ordered list of keyword groups: the first group
// with a match wins, so more specific degrees are listed first ("mba"
// must resolve to masters before "ba" can match bachelors).
var educationKeywords = []struct {
	keywords []string
	level    types.EducationLevel
}{
	{[]string{"phd", "doctorate"}, types.EducationPHD},
	{[]string{"master", "mba"}, types.EducationMasters},
	{[]string{"bachelor", "bs", "ba"}, types.EducationBachelors},
	{[]string{"associate"}, types.EducationAssociates},
	{[]string{"high school", "diploma"}, types.EducationHighSchool},
	{[]string{"bootcamp"}, types.EducationBootcamp},
	{[]string{"self"}, types.EducationSelfTaught},
}

// ParseEducationLevel maps a free-text education description to an
// EducationLevel. Unrecognized or empty input defaults to bachelors; this
// is a documented default, not a best guess.
func ParseEducationLevel(education string) types.EducationLevel {
	if education == "" {
		return types.EducationBachelors
	}

	lower := strings.ToLower(education)
	for _, group := range educationKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.level
			}
		}
	}

	return types.EducationBachelors
}
