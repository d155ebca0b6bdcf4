package domain

// LineDetails is the snapshot of one remote line lookup. It is created on
// a successful fetch and replaced wholesale by the next search.
type LineDetails struct {
	ID             string   `json:"id"`
	ShortName      string   `json:"short_name"`
	LongName       string   `json:"long_name"`
	Color          string   `json:"color"`
	TextColor      string   `json:"text_color"`
	Municipalities []string `json:"municipalities"`
	Localities     []string `json:"localities"`
	Patterns       []string `json:"patterns"`
	Facilities     []string `json:"facilities"`
}

// Pattern is one direction/variant of a line, enriched with the long name
// of its parent route. Collection order follows LineDetails.Patterns.
type Pattern struct {
	ID            string `json:"id"`
	ShortName     string `json:"short_name"`
	Headsign      string `json:"headsign"`
	Direction     int    `json:"direction"`
	RouteID       string `json:"route_id"`
	RouteLongName string `json:"route_long_name"`
	LongName      string `json:"long_name"`
	ShapeID       string `json:"shape_id"`
}

// Route is the parent record a pattern belongs to. Only the long name is
// merged into the pattern; the rest is kept for completeness.
type Route struct {
	ID        string `json:"id"`
	ShortName string `json:"short_name"`
	LongName  string `json:"long_name"`
	LineID    string `json:"line_id"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
}
