package domain

import (
	"encoding/json"
	"fmt"
)

const (
	GeometryLineString    = "LineString"
	TypeFeature           = "Feature"
	TypeFeatureCollection = "FeatureCollection"
)

// Position is one [lon, lat] coordinate pair. Values are kept as
// json.Number so exported coordinates stay byte-identical to the source.
type Position []json.Number

func (p Position) Lon() json.Number {
	return p[0]
}

func (p Position) Lat() json.Number {
	return p[1]
}

// Geometry is a GeoJSON geometry. Coordinates stay raw until a caller
// asks for a concrete structure.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

func (g *Geometry) IsLine() bool {
	return g != nil && g.Type == GeometryLineString
}

// LinePositions decodes the ordered coordinate sequence of a line
// geometry. Non-line geometries and pairs shorter than [lon, lat] are
// structural errors.
func (g *Geometry) LinePositions() ([]Position, error) {
	if !g.IsLine() {
		return nil, fmt.Errorf("geometry is not a LineString")
	}
	var positions []Position
	if err := json.Unmarshal(g.Coordinates, &positions); err != nil {
		return nil, fmt.Errorf("failed to decode line coordinates: %w", err)
	}
	for i, p := range positions {
		if len(p) < 2 {
			return nil, fmt.Errorf("coordinate %d has %d components, want at least 2", i, len(p))
		}
	}
	return positions, nil
}

// Feature is a GeoJSON feature.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   *Geometry              `json:"geometry"`
}

// Name returns the feature's own name property, if it carries one.
func (f Feature) Name() string {
	if name, ok := f.Properties["name"].(string); ok {
		return name
	}
	return ""
}

// Shape is the geographic payload of exactly one pattern, keyed by the
// pattern's shape_id. The remote API may answer with a bare line
// geometry, a single feature or a feature collection; all three decode
// into the same value.
type Shape struct {
	raw        json.RawMessage
	features   []Feature
	collection bool
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("failed to decode shape: %w", err)
	}

	switch probe.Type {
	case TypeFeatureCollection:
		var collection struct {
			Features []Feature `json:"features"`
		}
		if err := json.Unmarshal(data, &collection); err != nil {
			return fmt.Errorf("failed to decode feature collection: %w", err)
		}
		s.features = collection.Features
		s.collection = true
	case TypeFeature:
		var feature Feature
		if err := json.Unmarshal(data, &feature); err != nil {
			return fmt.Errorf("failed to decode feature: %w", err)
		}
		s.features = []Feature{feature}
	case "":
		return fmt.Errorf("shape document has no type")
	default:
		var geometry Geometry
		if err := json.Unmarshal(data, &geometry); err != nil {
			return fmt.Errorf("failed to decode geometry: %w", err)
		}
		s.features = []Feature{{Type: TypeFeature, Geometry: &geometry}}
	}

	s.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (s *Shape) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// IsCollection reports whether the source document was a feature
// collection rather than a single feature or bare geometry.
func (s *Shape) IsCollection() bool {
	return s.collection
}

// LineFeatures returns every feature carrying line geometry, in document
// order. Non-line features are skipped.
func (s *Shape) LineFeatures() []Feature {
	var lines []Feature
	for _, f := range s.features {
		if f.Geometry.IsLine() {
			lines = append(lines, f)
		}
	}
	return lines
}

// LinePositions returns the coordinate sequence of the first line
// geometry. It fails when the shape carries no non-empty line geometry,
// which is what the exporter treats as unusable.
func (s *Shape) LinePositions() ([]Position, error) {
	lines := s.LineFeatures()
	if len(lines) == 0 {
		return nil, fmt.Errorf("shape has no line geometry")
	}
	positions, err := lines[0].Geometry.LinePositions()
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("line geometry has no coordinates")
	}
	return positions, nil
}
