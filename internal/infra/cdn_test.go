package infra

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCDNUpload(t *testing.T) {
	var gotMethod, gotPath, gotKey, gotType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("AccessKey")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewCDNClient(CDNConfig{
		StorageURL: server.URL,
		ReadURL:    "https://cdn.example.com/",
		AccessKey:  "storage-key",
	})

	publicURL, err := client.Upload(context.Background(), "uploads/photo.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/photo.jpg", publicURL)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/uploads/photo.jpg", gotPath)
	assert.Equal(t, "storage-key", gotKey)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, []byte("jpeg-bytes"), gotBody)
}

func TestCDNUploadErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewCDNClient(CDNConfig{StorageURL: server.URL, ReadURL: "https://cdn.example.com"})
	_, err := client.Upload(context.Background(), "uploads/photo.jpg", []byte("x"), "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCDNDelete(t *testing.T) {
	var gotMethod, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer server.Close()

	client := NewCDNClient(CDNConfig{StorageURL: server.URL, ReadURL: "https://cdn.example.com", AccessKey: "k"})
	require.NoError(t, client.Delete(context.Background(), "uploads/photo.jpg"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/uploads/photo.jpg", gotPath)
}

func TestCDNPublicURL(t *testing.T) {
	client := NewCDNClient(CDNConfig{ReadURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com/uploads/a.png", client.PublicURL("/uploads/a.png"))
}
