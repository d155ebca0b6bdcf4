package transit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/route-trajectory-service/internal/config"
	"github.com/route-trajectory-service/internal/domain"
	"github.com/route-trajectory-service/internal/domain/repository"
	"github.com/route-trajectory-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a client for the remote transit API.
func NewClient(cfg *config.TransitConfig, logger *zap.Logger) repository.TransitRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

func (c *client) GetLine(ctx context.Context, lineID string) (*domain.LineDetails, error) {
	var line domain.LineDetails
	if err := c.get(ctx, "lines", lineID, &line); err != nil {
		return nil, err
	}
	return &line, nil
}

func (c *client) GetPattern(ctx context.Context, patternID string) (*domain.Pattern, error) {
	var pattern domain.Pattern
	if err := c.get(ctx, "patterns", patternID, &pattern); err != nil {
		return nil, err
	}
	return &pattern, nil
}

func (c *client) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	var route domain.Route
	if err := c.get(ctx, "routes", routeID, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

func (c *client) GetShape(ctx context.Context, shapeID string) (*domain.Shape, error) {
	var shape domain.Shape
	if err := c.get(ctx, "shapes", shapeID, &shape); err != nil {
		return nil, err
	}
	return &shape, nil
}

// get performs one GET <base>/{resource}/{id} round trip and decodes the
// JSON body into out. No retries: a failure propagates immediately.
func (c *client) get(ctx context.Context, resource, id string, out interface{}) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, resource, url.PathEscape(id))

	c.logger.Debug("Calling transit API",
		zap.String("url", endpoint),
		zap.String("resource", resource),
		zap.String("id", id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("resource", resource),
			zap.String("id", id),
			zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("Transit API returned non-success status",
			zap.String("resource", resource),
			zap.String("id", id),
			zap.Int("status_code", resp.StatusCode))
		return errors.NotFound(resource, id)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response",
			zap.String("resource", resource),
			zap.String("id", id),
			zap.Error(err))
		return fmt.Errorf("failed to decode %s %q response: %w", resource, id, err)
	}

	return nil
}
