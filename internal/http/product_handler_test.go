package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuminh/product-api/internal/config"
	httpapi "github.com/vuminh/product-api/internal/http"
	"github.com/vuminh/product-api/internal/repository"
	"github.com/vuminh/product-api/internal/service"
	"github.com/vuminh/product-api/internal/storage/db/dbtest"
	"github.com/vuminh/product-api/pkg/validator"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	repo := repository.NewMemoryProductRepository()
	productSvc := service.NewProductService(dbtest.NopDB{}, repo, v)

	svc := httpapi.New(config.HTTP{}, slog.New(slog.DiscardHandler), productSvc)

	r := chi.NewRouter()
	svc.RegisterMiddlewares(r)
	svc.RegisterHandlers(r)

	return r
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body == "" {
		reqBody = bytes.NewBuffer(nil)
	} else {
		reqBody = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var data map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &data))
	return data
}

func createProduct(t *testing.T, r chi.Router, name string, price float64) map[string]any {
	t.Helper()

	resp := doRequest(t, r, http.MethodPost, "/api/products",
		fmt.Sprintf(`{"name": %q, "price": %v}`, name, price))
	require.Equal(t, http.StatusCreated, resp.Code)
	return decodeBody(t, resp)
}

func TestCreateProductEndpoint(t *testing.T) {
	t.Run("returns 201 with the created product", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doRequest(t, r, http.MethodPost, "/api/products",
			`{"name": "Macbook Pro", "price": 1999.99}`)

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/json")

		data := decodeBody(t, resp)
		assert.Regexp(t, `^[0-9a-f-]{36}$`, data["id"])
		assert.Equal(t, "Macbook Pro", data["name"])
		assert.Regexp(t, `^PROD-MACB-[0-9a-f]{7}$`, data["sku"])
		assert.Equal(t, 1999.99, data["price"])
		assert.Nil(t, data["updatedAt"])

		createdAt, ok := data["createdAt"].(string)
		require.True(t, ok)
		_, err := time.Parse(time.RFC3339, createdAt)
		assert.NoError(t, err)
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doRequest(t, r, http.MethodPost, "/api/products", `{"name": "Broken"`)

		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "INVALID_JSON", decodeBody(t, resp)["code"])
	})

	t.Run("returns 422 on invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"negative price", `{"name": "Widget", "price": -1}`},
			{"empty name", `{"name": "", "price": 10}`},
			{"name too long", fmt.Sprintf(`{"name": %q, "price": 10}`, strings.Repeat("A", 256))},
			{"non-numeric price", `{"name": "Widget", "price": "cheap"}`},
			{"missing price", `{"name": "Widget"}`},
			{"empty body", ``},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := newTestRouter(t)

				resp := doRequest(t, r, http.MethodPost, "/api/products", tt.body)
				assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			})
		}
	})

	t.Run("validation response lists every violated field", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doRequest(t, r, http.MethodPost, "/api/products", `{"name": "", "price": -1}`)
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

		data := decodeBody(t, resp)
		details, ok := data["details"].([]any)
		require.True(t, ok)
		assert.Len(t, details, 2)
	})
}

func TestGetProductEndpoint(t *testing.T) {
	t.Run("returns 200 for an existing product", func(t *testing.T) {
		r := newTestRouter(t)
		created := createProduct(t, r, "Keyboard", 49)

		resp := doRequest(t, r, http.MethodGet, "/api/products/"+created["id"].(string), "")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, created, decodeBody(t, resp))
	})

	t.Run("returns 404 for an unassigned id", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doRequest(t, r, http.MethodGet, "/api/products/aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa", "")

		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeBody(t, resp)["code"])
	})

	t.Run("returns 404 for a malformed id", func(t *testing.T) {
		r := newTestRouter(t)

		resp := doRequest(t, r, http.MethodGet, "/api/products/not-a-uuid", "")

		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeBody(t, resp)["code"])
	})
}

func TestUpdateProductEndpoint(t *testing.T) {
	t.Run("returns 200 and stamps updatedAt on change", func(t *testing.T) {
		r := newTestRouter(t)
		created := createProduct(t, r, "Desk Lamp", 25)

		resp := doRequest(t, r, http.MethodPut, "/api/products/"+created["id"].(string),
			`{"name": "Desk Lamp v2", "price": 30}`)

		require.Equal(t, http.StatusOK, resp.Code)
		data := decodeBody(t, resp)
		assert.Equal(t, "Desk Lamp v2", data["name"])
		assert.Equal(t, 30.0, data["price"])
		assert.NotNil(t, data["updatedAt"])
	})

	t.Run("no-op update keeps updatedAt null", func(t *testing.T) {
		r := newTestRouter(t)
		created := createProduct(t, r, "Desk Lamp", 25)

		resp := doRequest(t, r, http.MethodPut, "/api/products/"+created["id"].(string),
			`{"name": "Desk Lamp", "price": 25}`)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Nil(t, decodeBody(t, resp)["updatedAt"])
	})

	t.Run("null fields mean don't change", func(t *testing.T) {
		r := newTestRouter(t)
		created := createProduct(t, r, "Desk Lamp", 25)

		resp := doRequest(t, r, http.MethodPut, "/api/products/"+created["id"].(string),
			`{"name": null, "price": null}`)

		require.Equal(t, http.StatusOK, resp.Code)
		data := decodeBody(t, resp)
		assert.Equal(t, "Desk Lamp", data["name"])
		assert.Equal(t, 25.0, data["price"])
		assert.Nil(t, data["updatedAt"])
	})

	t.Run("returns 404 for unassigned and malformed ids", func(t *testing.T) {
		r := newTestRouter(t)

		for _, id := range []string{"aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa", "not-a-uuid"} {
			resp := doRequest(t, r, http.MethodPut, "/api/products/"+id, `{"name": "X", "price": 1}`)
			assert.Equal(t, http.StatusNotFound, resp.Code)
		}
	})

	t.Run("returns 422 on invalid input", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"negative price", `{"price": -5}`},
			{"empty name", `{"name": ""}`},
			{"name too long", fmt.Sprintf(`{"name": %q}`, strings.Repeat("B", 256))},
			{"non-numeric price", `{"price": "cheap"}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := newTestRouter(t)
				created := createProduct(t, r, "Desk Lamp", 25)

				resp := doRequest(t, r, http.MethodPut, "/api/products/"+created["id"].(string), tt.body)
				assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			})
		}
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		r := newTestRouter(t)
		created := createProduct(t, r, "Desk Lamp", 25)

		resp := doRequest(t, r, http.MethodPut, "/api/products/"+created["id"].(string), `not json`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, resp.Code)
}
