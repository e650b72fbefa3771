package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simsem/internal/infra"
	"simsem/pkg/utils"
)

func TestUploadService(t *testing.T) {
	ctx := context.Background()

	var gotPaths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	cdn := infra.NewCDNClient(infra.CDNConfig{
		StorageURL: server.URL,
		ReadURL:    "https://cdn.example.com",
		AccessKey:  "k",
	})
	service := NewUploadService(cdn)

	t.Run("normalizes the name and returns the public url", func(t *testing.T) {
		result, err := service.Upload(ctx, "My Photo (1).JPG", []byte("jpeg"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.Path, "uploads/my_photo_1-"))
		assert.True(t, strings.HasSuffix(result.Path, ".jpg"))
		assert.Equal(t, "https://cdn.example.com/"+result.Path, result.URL)
	})

	t.Run("rejects unsupported extensions", func(t *testing.T) {
		_, err := service.Upload(ctx, "malware.exe", []byte("x"))
		assert.ErrorIs(t, err, utils.ErrUnsupportedFileType)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		_, err := service.Upload(ctx, "big.png", make([]byte, maxUploadBytes+1))
		assert.ErrorIs(t, err, utils.ErrFileTooLarge)
	})

	t.Run("delete forwards the path to the storage origin", func(t *testing.T) {
		gotPaths = nil
		require.NoError(t, service.Delete(ctx, "uploads/old.png"))
		assert.Equal(t, []string{"/uploads/old.png"}, gotPaths)
	})
}
