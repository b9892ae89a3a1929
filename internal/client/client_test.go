package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_InjectsBearerTokenAndQuery(t *testing.T) {
	var gotAuth, gotQuery, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("property_id")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"l1"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/", staticToken("tok-123"))
	var out []map[string]any
	err := c.Get("/leases", url.Values{"property_id": {"p1"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "p1", gotQuery)
	assert.Equal(t, "/api/leases", gotPath)
	require.Len(t, out, 1)
	assert.Equal(t, "l1", out[0]["id"])
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""))
	require.NoError(t, c.Delete("/tenants/t1"))
	assert.False(t, sawAuth)
}

func TestClient_PostEncodesJSON(t *testing.T) {
	var received map[string]any
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"t1","name":"Alice"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	err := c.Post("/tenants", map[string]string{"name": "Alice"}, &out)

	require.NoError(t, err)
	assert.Contains(t, contentType, "application/json")
	assert.Equal(t, "Alice", received["name"])
	assert.Equal(t, "t1", out.ID)
}

func TestClient_ErrorStatusBecomesAPIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", http.StatusBadRequest, `{"error":true,"message":"Tenant name is required"}`, "Tenant name is required"},
		{"error string", http.StatusNotFound, `{"error":"Lease not found"}`, "Lease not found"},
		{"no body", http.StatusInternalServerError, ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := New(srv.URL, nil).Get("/x", nil, nil)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.status, StatusOf(err))
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	err := New(addr, nil).Get("/properties", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	assert.Equal(t, "Failed to load properties", Message(err, "Failed to load properties"))
}

func TestMessage(t *testing.T) {
	err := &APIError{Status: http.StatusNotFound, Message: "Receipt not found"}
	assert.Equal(t, "Receipt not found", Message(err, "fallback"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))

	assert.Equal(t, "fallback", Message(&APIError{Status: http.StatusBadGateway}, "fallback"))
	assert.True(t, IsUnauthorized(&APIError{Status: http.StatusUnauthorized}))
}
