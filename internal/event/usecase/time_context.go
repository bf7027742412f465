package usecase

import "strings"

// inferTimeContext derives a coarse am/pm hint from the selection text.
// It is passed to the extraction backend to disambiguate bare times
// ("dinner at 7" leans pm when the text says "evening").
func inferTimeContext(text string) string {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "pm") ||
		strings.Contains(lower, "evening") ||
		strings.Contains(lower, "afternoon") {
		return "pm"
	}
	if strings.Contains(lower, "am") {
		return "am"
	}
	return "unknown"
}
