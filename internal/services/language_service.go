package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"simsem/internal/models/response_models"
	"simsem/pkg/utils"
)

const (
	languageCacheKey = "languages"
	languageCacheTTL = time.Hour
)

type LanguageServiceInterface interface {
	ListLanguages(ctx context.Context) ([]response_models.LanguageOption, error)
}

type LanguageService struct {
	backend ParseAPI
	cache   ByteCache
}

func NewLanguageService(backend ParseAPI, cache ByteCache) LanguageServiceInterface {
	return &LanguageService{
		backend: backend,
		cache:   cache,
	}
}

type supportedLanguageRecord struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (s *LanguageService) ListLanguages(ctx context.Context) ([]response_models.LanguageOption, error) {
	if cached, ok := s.cache.Get(ctx, languageCacheKey); ok {
		var options []response_models.LanguageOption
		if err := json.Unmarshal(cached, &options); err == nil {
			return options, nil
		}
	}

	var records []supportedLanguageRecord
	if err := s.backend.QueryObjects(ctx, "SupportedLanguage", nil, 0, &records); err != nil {
		log.Printf("Error listing supported languages: %v", err)
		return nil, utils.ErrBackendError
	}

	options := make([]response_models.LanguageOption, 0, len(records))
	for _, record := range records {
		options = append(options, response_models.LanguageOption{
			Name: record.Name,
			Code: record.Code,
		})
	}

	if raw, err := json.Marshal(options); err == nil {
		s.cache.Set(ctx, languageCacheKey, raw, languageCacheTTL)
	}

	return options, nil
}
