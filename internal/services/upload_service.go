package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"simsem/internal/infra"
	"simsem/internal/models/response_models"
	"simsem/pkg/utils"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var allowedUploadTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".pdf":  "application/pdf",
}

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9_\-]`)

type UploadServiceInterface interface {
	Upload(ctx context.Context, filename string, data []byte) (response_models.UploadResponse, error)
	Delete(ctx context.Context, path string) error
}

type UploadService struct {
	cdn *infra.CDNClient
}

func NewUploadService(cdn *infra.CDNClient) UploadServiceInterface {
	return &UploadService{cdn: cdn}
}

// Upload pushes one file to the storage origin and returns the public
// read URL. Names are normalized and suffixed with a uuid so repeated
// uploads of the same file never collide.
func (s *UploadService) Upload(ctx context.Context, filename string, data []byte) (response_models.UploadResponse, error) {
	if len(data) > maxUploadBytes {
		return response_models.UploadResponse{}, utils.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedUploadTypes[ext]
	if !ok {
		return response_models.UploadResponse{}, utils.ErrUnsupportedFileType
	}

	path := fmt.Sprintf("uploads/%s-%s%s", safeName(filename), uuid.New().String(), ext)

	url, err := s.cdn.Upload(ctx, path, data, contentType)
	if err != nil {
		log.Printf("Error uploading %s: %v", path, err)
		return response_models.UploadResponse{}, utils.ErrBackendError
	}

	return response_models.UploadResponse{
		Path: path,
		URL:  url,
	}, nil
}

func (s *UploadService) Delete(ctx context.Context, path string) error {
	if err := s.cdn.Delete(ctx, path); err != nil {
		log.Printf("Error deleting %s: %v", path, err)
		return utils.ErrBackendError
	}
	return nil
}

func safeName(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeNameChars.ReplaceAllString(name, "")
	if name == "" {
		name = "file"
	}
	return name
}
