package mapping

import (
	"strings"

	"lifecast/internal/types"
)

// majorCities are the known major-city names checked before any keyword
// group; a case-insensitive substring hit resolves to major_city.
var majorCities = []string{
	"new york", "los angeles", "chicago", "houston", "phoenix",
	"philadelphia", "san francisco", "seattle", "boston", "miami",
	"london", "tokyo", "paris", "singapore",
}

var suburbKeywords = []string{"suburb", "suburban"}
var ruralKeywords = []string{"rural", "country", "small town"}
var internationalKeywords = []string{"international", "abroad", "overseas"}

// ParseLocationType maps a free-text location description to a
// LocationType. Unrecognized or empty input defaults to small_city: the
// default deliberately differs from the education parser's because the
// base rates of the two populations differ.
func ParseLocationType(location string) types.LocationType {
	if location == "" {
		return types.LocationSmallCity
	}

	lower := strings.ToLower(location)

	for _, city := range majorCities {
		if strings.Contains(lower, city) {
			return types.LocationMajorCity
		}
	}

	switch {
	case containsAny(lower, suburbKeywords):
		return types.LocationSuburb
	case containsAny(lower, ruralKeywords):
		return types.LocationRural
	case containsAny(lower, internationalKeywords):
		return types.LocationInternational
	}

	return types.LocationSmallCity
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
