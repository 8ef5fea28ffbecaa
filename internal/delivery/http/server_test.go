package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salar-zonal-stats/internal/config"
	httpDelivery "github.com/salar-zonal-stats/internal/delivery/http"
	"github.com/salar-zonal-stats/internal/delivery/http/handler"
	"github.com/salar-zonal-stats/internal/delivery/http/middleware"
	"github.com/salar-zonal-stats/internal/domain"
	"github.com/salar-zonal-stats/internal/repository/memory"
	"github.com/salar-zonal-stats/internal/usecase"
	"github.com/salar-zonal-stats/internal/zonal"
)

type stubInterpreter struct {
	text string
	err  error
}

func (s stubInterpreter) Interpret(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func newTestServer(t *testing.T, interp stubInterpreter) *httpDelivery.Server {
	t.Helper()

	logger := zap.NewNop()
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, AllowOrigins: "*"},
	}

	catalogUC := usecase.NewCatalogUseCase(memory.NewSalarRepository(), logger)
	interpretationUC := usecase.NewInterpretationUseCase(interp, nil, logger, time.Hour)
	zonalUC := usecase.NewZonalStatsUseCase(
		zonal.NewGenerator(zonal.WithLatency(0)),
		catalogUC,
		interpretationUC,
		logger,
	)

	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewZonalHandler(zonalUC, interpretationUC, logger),
		handler.NewCatalogHandler(catalogUC, logger),
	)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func doJSON(t *testing.T, s *httpDelivery.Server, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp, env
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, stubInterpreter{})

	resp, err := s.App().Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestServer_ZonalStats(t *testing.T) {
	s := newTestServer(t, stubInterpreter{})

	resp, env := doJSON(t, s, "POST", "/api/v1/zonal-stats", map[string]any{
		"area_name": "maricunga",
		"index":     "NDWI",
		"year":      2023,
		"season":    "Verano",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.ZonalResult
	require.NoError(t, json.Unmarshal(env.Data, &result))

	assert.Equal(t, "Maricunga", result.AreaName)
	assert.Equal(t, domain.IndexNDWI, result.IndexUsed)
	require.Len(t, result.Stats, 4)

	sum := 0
	for i, class := range domain.LandClasses() {
		assert.Equal(t, class, result.Stats[i].ClassName)
		sum += result.Stats[i].AreaHa
	}
	assert.Equal(t, sum, result.TotalArea)
	assert.Equal(t, "L9_MARICUNGA_2023_NDWI_ZONAL_STATS", result.Metadata.SceneID)
	assert.EqualValues(t, 4, env.Meta["total"])
	assert.NotEmpty(t, env.Meta["request_id"])
}

func TestServer_ZonalStats_Validation(t *testing.T) {
	s := newTestServer(t, stubInterpreter{})

	tests := []struct {
		name  string
		body  any
		field string
	}{
		{name: "missing area", body: map[string]any{"index": "NDWI", "year": 2023}, field: "area_name"},
		{name: "missing index", body: map[string]any{"area_name": "Atacama", "year": 2023}, field: "index"},
		{name: "year too old", body: map[string]any{"area_name": "Atacama", "index": "NDWI", "year": 1900}, field: "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doJSON(t, s, "POST", "/api/v1/zonal-stats", tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.NotNil(t, env.Error)
			assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
			assert.Contains(t, env.Error.Details, tt.field)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		resp, env := doJSON(t, s, "POST", "/api/v1/zonal-stats", "{not json")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_BODY", env.Error.Code)
	})
}

func TestServer_Analysis(t *testing.T) {
	t.Run("with interpretation", func(t *testing.T) {
		s := newTestServer(t, stubInterpreter{text: "Healthy lagoon."})

		resp, env := doJSON(t, s, "POST", "/api/v1/analysis", map[string]any{
			"area_name": "Atacama",
			"index":     "NDSI",
			"year":      2022,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Result         domain.ZonalResult `json:"result"`
			Interpretation string             `json:"interpretation"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.Equal(t, "Atacama", body.Result.AreaName)
		assert.Equal(t, "Healthy lagoon.", body.Interpretation)
	})

	t.Run("interpreter unavailable", func(t *testing.T) {
		s := newTestServer(t, stubInterpreter{err: errors.New("missing api key")})

		resp, env := doJSON(t, s, "POST", "/api/v1/analysis", map[string]any{
			"area_name": "Atacama",
			"index":     "NDSI",
			"year":      2022,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Interpretation string `json:"interpretation"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.Equal(t, usecase.PlaceholderUnavailable, body.Interpretation)
	})
}

func TestServer_Interpretations(t *testing.T) {
	s := newTestServer(t, stubInterpreter{text: "Mostly salt crust."})

	resp, env := doJSON(t, s, "POST", "/api/v1/interpretations", map[string]any{
		"area_name":  "Maricunga",
		"index_used": "NDWI",
		"stats": []map[string]any{
			{"class_name": "Water", "median": 0.8, "area_ha": 300},
			{"class_name": "Salt-Crust", "median": -0.5, "area_ha": 700},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Interpretation string `json:"interpretation"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "Mostly salt crust.", body.Interpretation)

	t.Run("empty stats rejected", func(t *testing.T) {
		resp, env := doJSON(t, s, "POST", "/api/v1/interpretations", map[string]any{
			"area_name":  "Maricunga",
			"index_used": "NDWI",
			"stats":      []any{},
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Details, "stats")
	})
}

func TestServer_Catalog(t *testing.T) {
	s := newTestServer(t, stubInterpreter{})

	t.Run("all salars", func(t *testing.T) {
		resp, env := doJSON(t, s, "GET", "/api/v1/salars", nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, len(memory.DefaultSalars), env.Meta["total"])
	})

	t.Run("filtered salars", func(t *testing.T) {
		resp, env := doJSON(t, s, "GET", "/api/v1/salars?environment=Costero", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Salars []domain.Salar `json:"salars"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &body))
		require.NotEmpty(t, body.Salars)
		for _, salar := range body.Salars {
			assert.Equal(t, domain.EnvironmentCoastal, salar.Environment)
		}
	})

	t.Run("invalid environment", func(t *testing.T) {
		resp, env := doJSON(t, s, "GET", "/api/v1/salars?environment=Lunar", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
	})

	t.Run("indices", func(t *testing.T) {
		resp, env := doJSON(t, s, "GET", "/api/v1/indices", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Indices []domain.IndexInfo `json:"indices"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.Len(t, body.Indices, len(domain.SpectralIndices()))
	})
}

func TestServer_NotFound(t *testing.T) {
	s := newTestServer(t, stubInterpreter{})

	resp, env := doJSON(t, s, "GET", "/api/v1/nope", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
