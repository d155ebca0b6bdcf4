package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-trajectory-service/internal/domain"
	"github.com/route-trajectory-service/internal/usecase"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// gateShapeRepo serves shape fetches that block until released, so tests
// can decide the completion order of in-flight requests.
type gateShapeRepo struct {
	mu     sync.Mutex
	gates  map[string]chan struct{}
	shapes map[string]*domain.Shape
}

func newGateShapeRepo() *gateShapeRepo {
	return &gateShapeRepo{
		gates:  make(map[string]chan struct{}),
		shapes: make(map[string]*domain.Shape),
	}
}

func (r *gateShapeRepo) addShape(t *testing.T, shapeID string, gated bool) *domain.Shape {
	t.Helper()
	var shape domain.Shape
	require.NoError(t, json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[-9.14,38.70],[-9.10,38.75]]}`), &shape))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes[shapeID] = &shape
	if gated {
		r.gates[shapeID] = make(chan struct{})
	}
	return &shape
}

func (r *gateShapeRepo) release(shapeID string) {
	r.mu.Lock()
	gate := r.gates[shapeID]
	r.mu.Unlock()
	close(gate)
}

func (r *gateShapeRepo) GetShape(ctx context.Context, shapeID string) (*domain.Shape, error) {
	r.mu.Lock()
	gate := r.gates[shapeID]
	shape := r.shapes[shapeID]
	r.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return shape, nil
}

func (r *gateShapeRepo) GetLine(ctx context.Context, lineID string) (*domain.LineDetails, error) {
	return nil, nil
}

func (r *gateShapeRepo) GetPattern(ctx context.Context, patternID string) (*domain.Pattern, error) {
	return nil, nil
}

func (r *gateShapeRepo) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	return nil, nil
}

func TestSelectionManager_Select(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("selection commits pattern and shape together", func(t *testing.T) {
		repo := newGateShapeRepo()
		shape := repo.addShape(t, "shape-x", false)
		manager := usecase.NewSelectionManager(repo, logger)

		pattern := &domain.Pattern{ID: "x", ShapeID: "shape-x"}
		got, err := manager.Select(ctx, pattern)
		require.NoError(t, err)
		assert.Same(t, shape, got)

		current := manager.Current()
		assert.True(t, current.IsComplete())
		assert.Same(t, pattern, current.Pattern)
		assert.Same(t, shape, current.Shape)
	})

	t.Run("selecting a pattern clears the previous shape first", func(t *testing.T) {
		repo := newGateShapeRepo()
		repo.addShape(t, "shape-x", false)
		repo.addShape(t, "shape-y", true)
		manager := usecase.NewSelectionManager(repo, logger)

		_, err := manager.Select(ctx, &domain.Pattern{ID: "x", ShapeID: "shape-x"})
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			defer close(done)
			manager.Select(ctx, &domain.Pattern{ID: "y", ShapeID: "shape-y"})
		}()

		// While y's fetch is in flight the old shape must already be gone.
		assert.Eventually(t, func() bool {
			current := manager.Current()
			return current.Pattern != nil && current.Pattern.ID == "y" && current.Shape == nil
		}, waitFor, tick)

		repo.release("shape-y")
		<-done
		assert.True(t, manager.Current().IsComplete())
	})

	t.Run("stale fetch never overwrites a newer selection", func(t *testing.T) {
		repo := newGateShapeRepo()
		repo.addShape(t, "shape-x", true)
		shapeY := repo.addShape(t, "shape-y", false)
		manager := usecase.NewSelectionManager(repo, logger)

		patternX := &domain.Pattern{ID: "x", ShapeID: "shape-x"}
		patternY := &domain.Pattern{ID: "y", ShapeID: "shape-y"}

		// Issue the fetch for x, then select y before x resolves.
		done := make(chan struct{})
		go func() {
			defer close(done)
			manager.Select(ctx, patternX)
		}()

		assert.Eventually(t, func() bool {
			current := manager.Current()
			return current.Pattern != nil && current.Pattern.ID == "x"
		}, waitFor, tick)

		_, err := manager.Select(ctx, patternY)
		require.NoError(t, err)

		// Now let x's stale fetch complete.
		repo.release("shape-x")
		<-done

		current := manager.Current()
		require.NotNil(t, current.Pattern)
		assert.Equal(t, "y", current.Pattern.ID)
		assert.Same(t, shapeY, current.Shape)
	})

	t.Run("clear discards an in-flight fetch", func(t *testing.T) {
		repo := newGateShapeRepo()
		repo.addShape(t, "shape-x", true)
		manager := usecase.NewSelectionManager(repo, logger)

		done := make(chan struct{})
		go func() {
			defer close(done)
			manager.Select(ctx, &domain.Pattern{ID: "x", ShapeID: "shape-x"})
		}()

		assert.Eventually(t, func() bool {
			return manager.Current().Pattern != nil
		}, waitFor, tick)

		manager.Clear()
		repo.release("shape-x")
		<-done

		current := manager.Current()
		assert.Nil(t, current.Pattern)
		assert.Nil(t, current.Shape)
	})
}
