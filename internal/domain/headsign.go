package domain

import "strings"

// headsignDelimiter separates the two endpoints of a headsign label.
const headsignDelimiter = " - "

// HeadsignParts are the endpoint labels derived from a pattern headsign.
type HeadsignParts struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// SplitHeadsign splits a headsign on the literal " - " delimiter. Origin is
// the first segment and destination the last one, so "A - B - C" yields
// {A, C} and a headsign without the delimiter yields the whole string on
// both sides. UI labels and GPX waypoint names both go through here.
func SplitHeadsign(headsign string) HeadsignParts {
	parts := strings.Split(headsign, headsignDelimiter)
	return HeadsignParts{
		Origin:      parts[0],
		Destination: parts[len(parts)-1],
	}
}
