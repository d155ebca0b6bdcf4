package transit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/route-trajectory-service/internal/config"
	"github.com/route-trajectory-service/internal/domain"
	"github.com/route-trajectory-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *client {
	logger := zap.NewNop()
	cfg := &config.TransitConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5,
	}
	return NewClient(cfg, logger).(*client)
}

func TestClient_GetLine(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		line := domain.LineDetails{
			ID:             "3012",
			ShortName:      "3012",
			LongName:       "Cacilhas - Lisboa",
			Municipalities: []string{"Almada", "Lisboa"},
			Localities:     []string{"Cacilhas", "Cais do Sodré"},
			Patterns:       []string{"3012_0_1", "3012_0_2"},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/lines/3012", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(line)
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).GetLine(context.Background(), "3012")
		require.NoError(t, err)
		assert.Equal(t, "3012", result.ID)
		assert.Equal(t, "Cacilhas - Lisboa", result.LongName)
		assert.Equal(t, []string{"3012_0_1", "3012_0_2"}, result.Patterns)
	})

	t.Run("non-success status maps to NOT_FOUND", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).GetLine(context.Background(), "9999")
		assert.Nil(t, result)
		require.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeNotFound, appErr.Code)
		assert.Equal(t, "9999", appErr.Details["id"])
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		result, err := newTestClient(server.URL).GetLine(context.Background(), "3012")
		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})
}

func TestClient_GetPattern(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/patterns/3012_0_1", r.URL.Path)
		json.NewEncoder(w).Encode(domain.Pattern{
			ID:       "3012_0_1",
			Headsign: "Cacilhas - Lisboa",
			RouteID:  "3012_0",
			ShapeID:  "p3_shape",
		})
	}))
	defer server.Close()

	pattern, err := newTestClient(server.URL).GetPattern(context.Background(), "3012_0_1")
	require.NoError(t, err)
	assert.Equal(t, "3012_0", pattern.RouteID)
	assert.Equal(t, "p3_shape", pattern.ShapeID)
}

func TestClient_GetRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/routes/3012_0", r.URL.Path)
		json.NewEncoder(w).Encode(domain.Route{
			ID:       "3012_0",
			LongName: "Cacilhas (Terminal) - Lisboa (Sete Rios)",
		})
	}))
	defer server.Close()

	route, err := newTestClient(server.URL).GetRoute(context.Background(), "3012_0")
	require.NoError(t, err)
	assert.Equal(t, "Cacilhas (Terminal) - Lisboa (Sete Rios)", route.LongName)
}

func TestClient_GetShape(t *testing.T) {
	t.Run("line feature payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/shapes/p3_shape", r.URL.Path)
			w.Write([]byte(`{
				"type": "Feature",
				"properties": {},
				"geometry": {"type": "LineString", "coordinates": [[-9.14, 38.70], [-9.10, 38.75]]}
			}`))
		}))
		defer server.Close()

		shape, err := newTestClient(server.URL).GetShape(context.Background(), "p3_shape")
		require.NoError(t, err)

		positions, err := shape.LinePositions()
		require.NoError(t, err)
		assert.Len(t, positions, 2)
	})

	t.Run("missing shape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		shape, err := newTestClient(server.URL).GetShape(context.Background(), "missing")
		assert.Nil(t, shape)
		require.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeNotFound, appErr.Code)
	})
}
