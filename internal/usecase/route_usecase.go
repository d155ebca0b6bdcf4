package usecase

import (
	"context"
	"strings"

	"github.com/route-trajectory-service/internal/domain"
	"github.com/route-trajectory-service/internal/domain/repository"
	"github.com/route-trajectory-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// RouteUseCase resolves lines, their directional patterns and shapes
// against the remote transit API. It holds no state of its own.
type RouteUseCase struct {
	transitRepo repository.TransitRepository
	logger      *zap.Logger
}

func NewRouteUseCase(
	transitRepo repository.TransitRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		transitRepo: transitRepo,
		logger:      logger,
	}
}

// ResolveLine fetches one line record. An identifier that is empty after
// trimming fails before any network call is made.
func (uc *RouteUseCase) ResolveLine(ctx context.Context, lineID string) (*domain.LineDetails, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return nil, errors.ErrEmptyLineID
	}

	line, err := uc.transitRepo.GetLine(ctx, lineID)
	if err != nil {
		uc.logger.Error("Failed to resolve line",
			zap.String("line_id", lineID),
			zap.Error(err))
		return nil, err
	}

	return line, nil
}

type indexedPattern struct {
	index   int
	id      string
	pattern *domain.Pattern
	err     error
}

// ResolvePatterns fetches every pattern and its parent route in parallel
// and merges the route's long name into each pattern. The result keeps
// the order of patternIDs regardless of network completion order. The
// batch is all-or-nothing: one failed pattern-or-route fetch aborts the
// whole resolution with a PATTERN_LOAD_ERROR naming that pattern.
func (uc *RouteUseCase) ResolvePatterns(ctx context.Context, lineID string, patternIDs []string) ([]*domain.Pattern, error) {
	if len(patternIDs) == 0 {
		return []*domain.Pattern{}, nil
	}

	resultsChan := make(chan indexedPattern, len(patternIDs))

	for i, id := range patternIDs {
		go func(idx int, patternID string) {
			pattern, err := uc.transitRepo.GetPattern(ctx, patternID)
			if err != nil {
				resultsChan <- indexedPattern{index: idx, id: patternID, err: err}
				return
			}

			route, err := uc.transitRepo.GetRoute(ctx, pattern.RouteID)
			if err != nil {
				resultsChan <- indexedPattern{index: idx, id: patternID, err: err}
				return
			}

			pattern.RouteLongName = route.LongName
			pattern.LongName = route.LongName

			resultsChan <- indexedPattern{index: idx, id: patternID, pattern: pattern}
		}(i, id)
	}

	// Restore input order by index; remember only the first failure but
	// drain every result so no goroutine is left blocked.
	patterns := make([]*domain.Pattern, len(patternIDs))
	var failed *indexedPattern
	for range patternIDs {
		res := <-resultsChan
		if res.err != nil {
			if failed == nil {
				failed = &res
			}
			continue
		}
		patterns[res.index] = res.pattern
	}
	close(resultsChan)

	if failed != nil {
		uc.logger.Error("Pattern fan-out failed",
			zap.String("line_id", lineID),
			zap.String("pattern_id", failed.id),
			zap.Error(failed.err))
		return nil, errors.PatternLoad(failed.id, failed.err)
	}

	return patterns, nil
}

// ResolveShape fetches the geographic shape of one pattern.
func (uc *RouteUseCase) ResolveShape(ctx context.Context, shapeID string) (*domain.Shape, error) {
	shape, err := uc.transitRepo.GetShape(ctx, shapeID)
	if err != nil {
		uc.logger.Error("Failed to resolve shape",
			zap.String("shape_id", shapeID),
			zap.Error(err))
		return nil, err
	}

	return shape, nil
}
