package usecase

import (
	"context"
	"sync"

	"github.com/route-trajectory-service/internal/domain"
	"github.com/route-trajectory-service/internal/domain/repository"
	"go.uber.org/zap"
)

// SelectionManager guards the currently selected pattern and its loaded
// shape. Every Select bumps a monotonically increasing generation that is
// captured when the shape fetch is issued and checked again before the
// result is committed, so a stale fetch can never overwrite the shape of
// a newer selection (last-selection-wins).
type SelectionManager struct {
	mu          sync.Mutex
	generation  uint64
	current     domain.Selection
	transitRepo repository.TransitRepository
	logger      *zap.Logger
}

func NewSelectionManager(
	transitRepo repository.TransitRepository,
	logger *zap.Logger,
) *SelectionManager {
	return &SelectionManager{
		transitRepo: transitRepo,
		logger:      logger,
	}
}

// Select makes pattern the current selection and fetches its shape. The
// previously loaded shape is cleared before the fetch goes out. The
// fetched shape is returned to the caller either way, but it is only
// committed to the shared selection when no newer Select happened in the
// meantime.
func (m *SelectionManager) Select(ctx context.Context, pattern *domain.Pattern) (*domain.Shape, error) {
	m.mu.Lock()
	m.generation++
	generation := m.generation
	m.current = m.current.WithPattern(generation, pattern)
	m.mu.Unlock()

	shape, err := m.transitRepo.GetShape(ctx, pattern.ShapeID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != generation {
		m.logger.Debug("Discarding stale shape fetch",
			zap.String("pattern_id", pattern.ID),
			zap.Uint64("fetch_generation", generation),
			zap.Uint64("current_generation", m.generation))
		return shape, nil
	}
	m.current = m.current.WithShape(shape)

	return shape, nil
}

// Current returns a snapshot of the selection state.
func (m *SelectionManager) Current() domain.Selection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Clear resets the selection. The generation keeps increasing so any
// fetch still in flight is discarded on completion.
func (m *SelectionManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.current = domain.Selection{Generation: m.generation}
}
