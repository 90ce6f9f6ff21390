package openapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dataset-pricer/api/openapi"
)

type pingOutput struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	cfg := huma.DefaultConfig("Dataset Pricer API", "test")
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	api := humaecho.New(e, cfg)

	openapi.RegisterRoutes(e, api)

	// Registered after the spec routes to show the document is rendered lazily.
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/api/v1/ping",
	}, func(_ context.Context, _ *struct{}) (*pingOutput, error) {
		return &pingOutput{}, nil
	})

	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSwaggerJSON(t *testing.T) {
	t.Parallel()

	rec := get(newServer(t), "/swagger/swagger.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get(echo.HeaderContentType))

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Dataset Pricer API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/v1/ping")
}

func TestSwaggerYAML(t *testing.T) {
	t.Parallel()

	rec := get(newServer(t), "/swagger/swagger.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/ping:")
}

func TestSwaggerUI(t *testing.T) {
	t.Parallel()

	e := newServer(t)

	rec := get(e, "/swagger/index.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Dataset Pricer API</title>")

	for _, path := range []string{"/swagger", "/swagger/"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusMovedPermanently, rec.Code, path)
		assert.Equal(t, "/swagger/index.html", rec.Header().Get(echo.HeaderLocation), path)
	}
}
