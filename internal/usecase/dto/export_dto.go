package dto

import "github.com/route-trajectory-service/internal/domain"

// ExportQuery are the optional knobs on the GPX download endpoint.
type ExportQuery struct {
	TrackName string `query:"track_name" validate:"omitempty,max=120"`
}

// SelectionResponse is the current selection snapshot.
type SelectionResponse struct {
	Generation uint64           `json:"generation"`
	Pattern    *PatternResponse `json:"pattern,omitempty"`
	HasShape   bool             `json:"has_shape"`
}

func ConvertSelection(selection domain.Selection) SelectionResponse {
	resp := SelectionResponse{
		Generation: selection.Generation,
		HasShape:   selection.Shape != nil,
	}
	if selection.Pattern != nil {
		pattern := ConvertPattern(selection.Pattern)
		resp.Pattern = &pattern
	}
	return resp
}
