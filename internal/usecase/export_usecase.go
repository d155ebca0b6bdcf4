package usecase

import (
	"strings"

	"github.com/route-trajectory-service/internal/domain"
	"github.com/route-trajectory-service/internal/pkg/errors"
)

// ExportUseCase turns a pattern shape into a GPX 1.1 trajectory document.
// It is a pure transform: no I/O, no retained state.
type ExportUseCase struct {
	creator string
}

func NewExportUseCase(creator string) *ExportUseCase {
	return &ExportUseCase{creator: creator}
}

// ToGPX renders the shape as a GPX document with two synthesized
// waypoints at the endpoints of the first line geometry and one track
// per line-geometry feature. Coordinates are copied verbatim, in source
// order and at source precision. A shape without usable line coordinates
// fails with INVALID_GEOMETRY.
func (uc *ExportUseCase) ToGPX(shape *domain.Shape, originLabel, destinationLabel, trackName string) (string, error) {
	if shape == nil {
		return "", errors.ErrInvalidGeometry
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<gpx xmlns=\"http://www.topografix.com/GPX/1/1\" version=\"1.1\" creator=\"")
	b.WriteString(xmlEscape(uc.creator))
	b.WriteString("\">\n")

	lines := shape.LineFeatures()
	if len(lines) == 0 {
		// A collection without any line feature degrades to an empty
		// document body; anything else is unusable geometry.
		if shape.IsCollection() {
			b.WriteString("</gpx>\n")
			return b.String(), nil
		}
		return "", errors.ErrInvalidGeometry
	}

	positions, err := lines[0].Geometry.LinePositions()
	if err != nil || len(positions) == 0 {
		return "", errors.ErrInvalidGeometry
	}

	writeWaypoint(&b, positions[0], originLabel)
	writeWaypoint(&b, positions[len(positions)-1], destinationLabel)

	for _, feature := range lines {
		featurePositions, err := feature.Geometry.LinePositions()
		if err != nil {
			return "", errors.ErrInvalidGeometry
		}
		name := feature.Name()
		if name == "" {
			name = trackName
		}
		writeTrack(&b, featurePositions, name)
	}

	b.WriteString("</gpx>\n")
	return b.String(), nil
}

// Filename is the suggested download name for an exported pattern:
// rota-{line short name}-{headsign with spaces replaced by hyphens}.gpx
func (uc *ExportUseCase) Filename(lineShortName, headsign string) string {
	return "rota-" + lineShortName + "-" + strings.ReplaceAll(headsign, " ", "-") + ".gpx"
}

func writeWaypoint(b *strings.Builder, position domain.Position, name string) {
	b.WriteString("  <wpt lat=\"")
	b.WriteString(string(position.Lat()))
	b.WriteString("\" lon=\"")
	b.WriteString(string(position.Lon()))
	b.WriteString("\">\n    <name>")
	b.WriteString(xmlEscape(name))
	b.WriteString("</name>\n  </wpt>\n")
}

func writeTrack(b *strings.Builder, positions []domain.Position, name string) {
	b.WriteString("  <trk>\n    <name>")
	b.WriteString(xmlEscape(name))
	b.WriteString("</name>\n    <trkseg>\n")
	for _, position := range positions {
		b.WriteString("      <trkpt lat=\"")
		b.WriteString(string(position.Lat()))
		b.WriteString("\" lon=\"")
		b.WriteString(string(position.Lon()))
		b.WriteString("\"></trkpt>\n")
	}
	b.WriteString("    </trkseg>\n  </trk>\n")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
