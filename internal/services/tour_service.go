package services

import (
	"context"
	"encoding/json"
	"log"

	"simsem/internal/models/db_models"
	"simsem/internal/models/request_models"
	"simsem/pkg/utils"
)

type TourService struct {
	backend ParseAPI
}

func NewTourService(backend ParseAPI) *TourService {
	return &TourService{backend: backend}
}

// PublishTour compiles the terminal step values into one ProposedTour
// create and issues exactly one POST. No retry, no idempotency key: a
// resubmission after a reported failure can create a second record if
// the first one landed server-side.
func (t *TourService) PublishTour(ctx context.Context, draft *db_models.WizardDraft, steps map[string]json.RawMessage) (string, error) {
	var basic request_models.BasicInformation
	var details request_models.TourDetails
	var pricing request_models.PricingPolicy

	if err := json.Unmarshal(steps[StepBasic], &basic); err != nil {
		return "", utils.ErrMalformedPayload
	}
	if err := json.Unmarshal(steps[StepDetails], &details); err != nil {
		return "", utils.ErrMalformedPayload
	}
	if err := json.Unmarshal(steps[StepPricing], &pricing); err != nil {
		return "", utils.ErrMalformedPayload
	}

	var meals *request_models.MealDetails
	if raw, ok := steps[StepMeals]; ok {
		meals = &request_models.MealDetails{}
		if err := json.Unmarshal(raw, meals); err != nil {
			return "", utils.ErrMalformedPayload
		}
	}

	payload := CompileTourPayload(draft.TourType, basic, details, pricing, meals)

	result, err := t.backend.CreateObject(ctx, "ProposedTour", payload)
	if err != nil {
		log.Printf("Error creating ProposedTour for draft %s: %v", draft.ID, err)
		return "", utils.ErrBackendError
	}

	return result.ObjectID, nil
}
