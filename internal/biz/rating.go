package biz

import "strings"

// Audience labels for the Vietnamese film classification codes
const (
	Audience18     = "For audiences aged 18 and over (18+)."
	Audience16     = "For audiences aged 16 and over (16+)."
	Audience13     = "For audiences aged 13 and over (13+)."
	AudienceK      = "For audiences under 13 when accompanied by a parent or guardian."
	AudienceAllAge = "For audiences of all ages."
)

// AgeRatingDescription describes who may watch a movie with the given rating code.
// Both the current (T) and legacy (C) codes are recognised; unknown codes fall back
// to the all-ages label.
func AgeRatingDescription(code string) string {
	rating := strings.ToUpper(strings.TrimSpace(code))

	switch {
	case strings.Contains(rating, "C18") || strings.Contains(rating, "T18"):
		return Audience18
	case strings.Contains(rating, "C16") || strings.Contains(rating, "T16"):
		return Audience16
	case strings.Contains(rating, "C13") || strings.Contains(rating, "T13"):
		return Audience13
	case rating == "K":
		return AudienceK
	}
	return AudienceAllAge
}
