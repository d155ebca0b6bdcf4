package repository

import (
	"context"

	"github.com/route-trajectory-service/internal/domain"
)

// TransitRepository is the remote transit API the resolver runs against.
// Every call is a single network round trip with no retries; a lookup the
// remote answers with a non-success status surfaces as a NOT_FOUND error
// carrying the identifier that failed.
type TransitRepository interface {
	GetLine(ctx context.Context, lineID string) (*domain.LineDetails, error)
	GetPattern(ctx context.Context, patternID string) (*domain.Pattern, error)
	GetRoute(ctx context.Context, routeID string) (*domain.Route, error)
	GetShape(ctx context.Context, shapeID string) (*domain.Shape, error)
}
