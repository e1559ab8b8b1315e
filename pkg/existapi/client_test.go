package existapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

func TestFetchAttributesWithValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/attributes/with-values/", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		assert.Equal(t, "steps,sleep,meditation_min,productive_min", r.URL.Query().Get("attributes"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{
					"name": "steps",
					"label": "Steps",
					"values": [
						{"date": "2025-07-11", "value": 8420},
						{"date": "2025-07-12", "value": null}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testTimeout)

	records, err := client.FetchAttributesWithValues(context.Background(), "secret-token",
		[]string{"steps", "sleep", "meditation_min", "productive_min"})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "steps", records[0].Name)
	assert.Equal(t, "Steps", records[0].Label)
	require.Len(t, records[0].Values, 2)
	require.NotNil(t, records[0].Values[0].Value)
	assert.Equal(t, 8420.0, *records[0].Values[0].Value)
	assert.Nil(t, records[0].Values[1].Value)
}

func TestFetchAttributesWithValues_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid token."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testTimeout)

	_, err := client.FetchAttributesWithValues(context.Background(), "bad-token", []string{"steps"})

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Body, "Invalid token.")
}

func TestFetchAttributesWithValues_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, testTimeout)

	_, err := client.FetchAttributesWithValues(context.Background(), "token", []string{"steps"})

	var networkErr *NetworkError
	assert.ErrorAs(t, err, &networkErr)
}

func TestFetchAttributesWithValues_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond)

	_, err := client.FetchAttributesWithValues(context.Background(), "token", []string{"steps"})

	var networkErr *NetworkError
	assert.ErrorAs(t, err, &networkErr)
}

func TestFetchAvailableAttributes(t *testing.T) {
	catalog := `{"results":[{"name":"steps","label":"Steps"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/attributes/", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalog))
	}))
	defer server.Close()

	client := NewClient(server.URL, testTimeout)

	raw, err := client.FetchAvailableAttributes(context.Background(), "secret-token")
	require.NoError(t, err)
	assert.JSONEq(t, catalog, string(raw))
}
