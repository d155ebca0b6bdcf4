package dto

import "github.com/route-trajectory-service/internal/domain"

// LineResponse is the line record plus its resolved, enriched patterns
// in the line's own pattern order.
type LineResponse struct {
	ID             string            `json:"id"`
	ShortName      string            `json:"short_name"`
	LongName       string            `json:"long_name"`
	Color          string            `json:"color,omitempty"`
	TextColor      string            `json:"text_color,omitempty"`
	Municipalities []string          `json:"municipalities"`
	Localities     []string          `json:"localities"`
	Patterns       []PatternResponse `json:"patterns"`
}

// PatternResponse carries the enriched pattern together with the endpoint
// labels the presentation layer renders.
type PatternResponse struct {
	ID            string `json:"id"`
	Headsign      string `json:"headsign"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Direction     int    `json:"direction"`
	RouteID       string `json:"route_id"`
	RouteLongName string `json:"route_long_name"`
	LongName      string `json:"long_name"`
	ShapeID       string `json:"shape_id"`
}

func ConvertLine(line *domain.LineDetails, patterns []*domain.Pattern) LineResponse {
	resp := LineResponse{
		ID:             line.ID,
		ShortName:      line.ShortName,
		LongName:       line.LongName,
		Color:          line.Color,
		TextColor:      line.TextColor,
		Municipalities: line.Municipalities,
		Localities:     line.Localities,
		Patterns:       make([]PatternResponse, 0, len(patterns)),
	}
	for _, p := range patterns {
		resp.Patterns = append(resp.Patterns, ConvertPattern(p))
	}
	return resp
}

func ConvertPattern(pattern *domain.Pattern) PatternResponse {
	parts := domain.SplitHeadsign(pattern.Headsign)
	return PatternResponse{
		ID:            pattern.ID,
		Headsign:      pattern.Headsign,
		Origin:        parts.Origin,
		Destination:   parts.Destination,
		Direction:     pattern.Direction,
		RouteID:       pattern.RouteID,
		RouteLongName: pattern.RouteLongName,
		LongName:      pattern.LongName,
		ShapeID:       pattern.ShapeID,
	}
}
