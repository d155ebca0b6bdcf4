package domain

// Selection is the immutable snapshot of the currently selected pattern
// and its loaded shape. Pattern and shape only ever change together: a
// new pattern clears the shape, and a shape is only attached to the
// selection generation it was fetched for.
type Selection struct {
	Generation uint64   `json:"generation"`
	Pattern    *Pattern `json:"pattern,omitempty"`
	Shape      *Shape   `json:"shape,omitempty"`
}

// WithPattern starts a new selection generation. The previously loaded
// shape is dropped because it belongs to the old pattern.
func (s Selection) WithPattern(generation uint64, pattern *Pattern) Selection {
	return Selection{
		Generation: generation,
		Pattern:    pattern,
	}
}

// WithShape attaches a fetched shape to the current generation.
func (s Selection) WithShape(shape *Shape) Selection {
	return Selection{
		Generation: s.Generation,
		Pattern:    s.Pattern,
		Shape:      shape,
	}
}

// IsComplete reports whether the selection holds a mutually consistent
// pattern and shape pair.
func (s Selection) IsComplete() bool {
	return s.Pattern != nil && s.Shape != nil
}
