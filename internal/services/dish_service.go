package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"simsem/internal/models/parse_models"
	"simsem/internal/models/request_models"
	"simsem/internal/models/response_models"
	"simsem/pkg/utils"
)

const (
	dishCacheTTL    = 5 * time.Minute
	dishQueryLimit  = 100
	offeredDishName = "OfferedDish"
)

type DishServiceInterface interface {
	Search(ctx context.Context, category, query, dietary string) ([]response_models.Dish, error)
	CreateDish(ctx context.Context, req request_models.CustomDishRequest) (response_models.Dish, error)
}

type DishService struct {
	backend ParseAPI
	cache   ByteCache
}

func NewDishService(backend ParseAPI, cache ByteCache) DishServiceInterface {
	return &DishService{
		backend: backend,
		cache:   cache,
	}
}

type offeredDishRecord struct {
	ObjectID    string   `json:"objectId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	DietaryTags []string `json:"dietaryTags"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
}

// Search returns dishes for a category. Without a text query the full
// category list is served from cache and filtered locally; a text query
// always goes to the backend (the client debounces keystrokes, and a
// superseded in-flight search is tolerated rather than cancelled).
func (s *DishService) Search(ctx context.Context, category, query, dietary string) ([]response_models.Dish, error) {
	if query == "" {
		records, err := s.categoryList(ctx, category)
		if err != nil {
			return nil, err
		}
		return filterByDietary(records, dietary), nil
	}

	where := map[string]interface{}{
		"category": category,
		"name":     map[string]interface{}{"$regex": query, "$options": "i"},
	}
	if dietary != "" {
		where["dietaryTags"] = dietary
	}

	var records []offeredDishRecord
	if err := s.backend.QueryObjects(ctx, offeredDishName, where, dishQueryLimit, &records); err != nil {
		log.Printf("Error searching dishes: %v", err)
		return nil, utils.ErrBackendError
	}

	return toDishes(records), nil
}

// CreateDish is the persisted sibling of the wizard's local-only custom
// dish: it writes an OfferedDish record to the backend.
func (s *DishService) CreateDish(ctx context.Context, req request_models.CustomDishRequest) (response_models.Dish, error) {
	created, err := s.backend.CreateObject(ctx, offeredDishName, parse_models.OfferedDish{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DietaryTags: req.DietaryTags,
		Category:    req.Category,
		Country:     req.Country,
	})
	if err != nil {
		log.Printf("Error creating dish: %v", err)
		return response_models.Dish{}, utils.ErrBackendError
	}

	return response_models.Dish{
		ID:          created.ObjectID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DietaryTags: req.DietaryTags,
		Category:    req.Category,
		Country:     req.Country,
	}, nil
}

func (s *DishService) categoryList(ctx context.Context, category string) ([]offeredDishRecord, error) {
	cacheKey := "dishes:" + category

	if cached, ok := s.cache.Get(ctx, cacheKey); ok {
		var records []offeredDishRecord
		if err := json.Unmarshal(cached, &records); err == nil {
			return records, nil
		}
	}

	var records []offeredDishRecord
	where := map[string]interface{}{"category": category}
	if err := s.backend.QueryObjects(ctx, offeredDishName, where, dishQueryLimit, &records); err != nil {
		log.Printf("Error listing dishes for category %s: %v", category, err)
		return nil, utils.ErrBackendError
	}

	if raw, err := json.Marshal(records); err == nil {
		s.cache.Set(ctx, cacheKey, raw, dishCacheTTL)
	}

	return records, nil
}

func filterByDietary(records []offeredDishRecord, dietary string) []response_models.Dish {
	if dietary == "" {
		return toDishes(records)
	}

	filtered := make([]offeredDishRecord, 0, len(records))
	for _, record := range records {
		for _, tag := range record.DietaryTags {
			if strings.EqualFold(tag, dietary) {
				filtered = append(filtered, record)
				break
			}
		}
	}
	return toDishes(filtered)
}

func toDishes(records []offeredDishRecord) []response_models.Dish {
	dishes := make([]response_models.Dish, 0, len(records))
	for _, record := range records {
		dishes = append(dishes, response_models.Dish{
			ID:          record.ObjectID,
			Name:        record.Name,
			Description: record.Description,
			ImageURL:    record.ImageURL,
			DietaryTags: record.DietaryTags,
			Category:    record.Category,
			Country:     record.Country,
		})
	}
	return dishes
}
