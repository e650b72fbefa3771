package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParseClient(handler http.Handler) (*ParseClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewParseClient(ParseConfig{
		BaseURL:    server.URL,
		AppID:      "app-id",
		RestAPIKey: "rest-key",
	})
	return client, server
}

func TestParseCreateObject(t *testing.T) {
	var gotPath, gotAppID, gotRestKey string
	var gotBody map[string]interface{}

	client, server := newTestParseClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAppID = r.Header.Get("X-Parse-Application-Id")
		gotRestKey = r.Header.Get("X-Parse-REST-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"objectId": "abc123", "createdAt": "2026-01-01T00:00:00Z"})
	}))
	defer server.Close()

	result, err := client.CreateObject(context.Background(), "ProposedTour", map[string]string{"title": "Souk walk"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.ObjectID)
	assert.Equal(t, "/classes/ProposedTour", gotPath)
	assert.Equal(t, "app-id", gotAppID)
	assert.Equal(t, "rest-key", gotRestKey)
	assert.Equal(t, "Souk walk", gotBody["title"])
}

func TestParseCreateObjectErrorStatus(t *testing.T) {
	client, server := newTestParseClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := client.CreateObject(context.Background(), "ProposedTour", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestParseQueryObjects(t *testing.T) {
	client, server := newTestParseClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		where := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("where")), &where))
		assert.Equal(t, "main-course", where["category"])
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{{"objectId": "d1", "name": "Mansaf"}},
		})
	}))
	defer server.Close()

	var records []struct {
		ObjectID string `json:"objectId"`
		Name     string `json:"name"`
	}
	err := client.QueryObjects(context.Background(), "OfferedDish", map[string]interface{}{"category": "main-course"}, 100, &records)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Mansaf", records[0].Name)
}

func TestParseCallFunction(t *testing.T) {
	client, server := newTestParseClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/verifyIban", r.URL.Path)

		var params map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "JO94CBJO0010000000000131000302", params["iban"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": map[string]interface{}{"valid": true, "countryCode": "JO"},
		})
	}))
	defer server.Close()

	var out struct {
		Valid       bool   `json:"valid"`
		CountryCode string `json:"countryCode"`
	}
	err := client.CallFunction(context.Background(), "verifyIban", map[string]string{"iban": "JO94CBJO0010000000000131000302"}, &out)
	require.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, "JO", out.CountryCode)
}
