package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"simsem/internal/models/db_models"
	"simsem/internal/models/request_models"
	"simsem/internal/models/response_models"
	"simsem/internal/repositories"
	mem "simsem/pkg/memcache"
	"simsem/pkg/utils"
)

// Step names, fixed order per wizard kind. The manager only ever moves
// one step at a time; there is no terminal state of its own — the last
// step's "next" is remapped to publish.
const (
	StepBasic   = "basic"
	StepDetails = "details"
	StepMeals   = "meals"
	StepPricing = "pricing"

	StepIdentification = "identification"
	StepLanguage       = "language"
	StepServices       = "services"
	StepPayment        = "payment"
	StepAccount        = "account"
)

type TourPublisher interface {
	PublishTour(ctx context.Context, draft *db_models.WizardDraft, steps map[string]json.RawMessage) (string, error)
}

type SignupPublisher interface {
	PublishSignup(ctx context.Context, draft *db_models.WizardDraft, steps map[string]json.RawMessage) (objectID string, token string, err error)
}

type WizardServiceInterface interface {
	StartWizard(ctx context.Context, req request_models.StartWizardRequest) (response_models.WizardResponse, error)
	GetWizard(ctx context.Context, id string) (response_models.WizardResponse, error)
	SaveStep(ctx context.Context, id string, step string, payload json.RawMessage) (response_models.StepResult, error)
	Next(ctx context.Context, id string) (response_models.NextResult, error)
	Back(ctx context.Context, id string) (response_models.WizardResponse, error)
	AddCustomDish(ctx context.Context, id string, req request_models.CustomDishRequest) (response_models.Dish, error)
	ListWizards(ctx context.Context, kind string, page, pageSize int) ([]response_models.WizardResponse, error)
	DeleteWizard(ctx context.Context, id string) error
}

type WizardService struct {
	draftRepo     repositories.DraftRepository
	verifications mem.VerificationStore
	tours         TourPublisher
	signups       SignupPublisher
}

func NewWizardService(
	draftRepo repositories.DraftRepository,
	verifications mem.VerificationStore,
	tours TourPublisher,
	signups SignupPublisher,
) WizardServiceInterface {
	return &WizardService{
		draftRepo:     draftRepo,
		verifications: verifications,
		tours:         tours,
		signups:       signups,
	}
}

// StepSequence returns the fixed step order for a wizard. Dining tours
// get the meal-details step before pricing.
func StepSequence(kind, tourType string) ([]string, error) {
	switch kind {
	case db_models.WizardKindTour:
		switch tourType {
		case request_models.TourTypeDining:
			return []string{StepBasic, StepDetails, StepMeals, StepPricing}, nil
		case request_models.TourTypeLocalLiving, request_models.TourTypeGetaway:
			return []string{StepBasic, StepDetails, StepPricing}, nil
		default:
			return nil, utils.ErrUnknownTourType
		}
	case db_models.WizardKindSignup:
		return []string{StepIdentification, StepLanguage, StepServices, StepPayment, StepAccount}, nil
	default:
		return nil, utils.ErrUnknownWizardKind
	}
}

func (w *WizardService) StartWizard(ctx context.Context, req request_models.StartWizardRequest) (response_models.WizardResponse, error) {
	steps, err := StepSequence(req.Kind, req.TourType)
	if err != nil {
		return response_models.WizardResponse{}, err
	}

	draft := &db_models.WizardDraft{
		Kind:      req.Kind,
		TourType:  req.TourType,
		StepIndex: 0,
		Steps:     []byte("{}"),
	}

	if _, err := w.draftRepo.Create(ctx, draft); err != nil {
		log.Printf("Error creating wizard draft: %v", err)
		return response_models.WizardResponse{}, utils.ErrDatabaseError
	}

	return wizardResponse(draft, steps, nil), nil
}

func (w *WizardService) GetWizard(ctx context.Context, id string) (response_models.WizardResponse, error) {
	draft, steps, stepData, err := w.loadDraft(ctx, id)
	if err != nil {
		return response_models.WizardResponse{}, err
	}
	return wizardResponse(draft, steps, stepData), nil
}

// SaveStep validates and stores one step's payload. The payload is kept
// even when field errors remain — validation is eager, but only "next"
// gates on it.
func (w *WizardService) SaveStep(ctx context.Context, id string, step string, payload json.RawMessage) (response_models.StepResult, error) {
	draft, steps, stepData, err := w.loadDraft(ctx, id)
	if err != nil {
		return response_models.StepResult{}, err
	}

	if !containsString(steps, step) {
		return response_models.StepResult{}, utils.ErrUnknownStep
	}

	normalized, fieldErrors, err := w.prepareStepPayload(draft, step, payload)
	if err != nil {
		return response_models.StepResult{}, err
	}

	stepData[step] = normalized
	if err := w.storeSteps(ctx, draft, stepData); err != nil {
		return response_models.StepResult{}, err
	}

	return response_models.StepResult{
		Valid:       len(fieldErrors) == 0,
		FieldErrors: fieldErrors,
	}, nil
}

func (w *WizardService) Next(ctx context.Context, id string) (response_models.NextResult, error) {
	draft, steps, stepData, err := w.loadDraft(ctx, id)
	if err != nil {
		return response_models.NextResult{}, err
	}

	current := steps[draft.StepIndex]
	fieldErrors := w.validateSavedStep(draft, current, stepData)
	if len(fieldErrors) > 0 {
		return response_models.NextResult{
			Advanced:    false,
			Step:        current,
			StepIndex:   draft.StepIndex,
			FieldErrors: fieldErrors,
		}, nil
	}

	// Last step: publish instead of advancing.
	if draft.StepIndex == len(steps)-1 {
		return w.publish(ctx, draft, stepData, current)
	}

	draft.StepIndex++
	if err := w.draftRepo.Update(ctx, draft); err != nil {
		log.Printf("Error advancing wizard %s: %v", draft.ID, err)
		return response_models.NextResult{}, utils.ErrDatabaseError
	}

	return response_models.NextResult{
		Advanced:  true,
		Step:      steps[draft.StepIndex],
		StepIndex: draft.StepIndex,
	}, nil
}

func (w *WizardService) Back(ctx context.Context, id string) (response_models.WizardResponse, error) {
	draft, steps, stepData, err := w.loadDraft(ctx, id)
	if err != nil {
		return response_models.WizardResponse{}, err
	}

	// No validation on the way back, never below the first step.
	if draft.StepIndex > 0 {
		draft.StepIndex--
		if err := w.draftRepo.Update(ctx, draft); err != nil {
			log.Printf("Error retreating wizard %s: %v", draft.ID, err)
			return response_models.WizardResponse{}, utils.ErrDatabaseError
		}
	}

	return wizardResponse(draft, steps, stepData), nil
}

// AddCustomDish merges a locally synthesized dish into the draft's meal
// selection. It never reaches the backend; the temp id marks it apart
// from persisted OfferedDish records.
func (w *WizardService) AddCustomDish(ctx context.Context, id string, req request_models.CustomDishRequest) (response_models.Dish, error) {
	draft, steps, stepData, err := w.loadDraft(ctx, id)
	if err != nil {
		return response_models.Dish{}, err
	}

	if !containsString(steps, StepMeals) {
		return response_models.Dish{}, utils.ErrUnknownStep
	}

	var meals request_models.MealDetails
	if raw, ok := stepData[StepMeals]; ok {
		if err := json.Unmarshal(raw, &meals); err != nil {
			log.Printf("Error decoding meal step for wizard %s: %v", draft.ID, err)
		}
	}

	item := request_models.FoodItem{
		ID:          "local-" + uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DietaryTags: req.DietaryTags,
		Category:    req.Category,
		Country:     req.Country,
	}

	if meals.SelectedFoodItems == nil {
		meals.SelectedFoodItems = map[string][]request_models.FoodItem{}
	}
	meals.SelectedFoodItems[req.Category] = append(meals.SelectedFoodItems[req.Category], item)

	raw, err := json.Marshal(meals)
	if err != nil {
		return response_models.Dish{}, fmt.Errorf("marshal meal step: %w", err)
	}
	stepData[StepMeals] = raw

	if err := w.storeSteps(ctx, draft, stepData); err != nil {
		return response_models.Dish{}, err
	}

	return response_models.Dish{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		DietaryTags: item.DietaryTags,
		Category:    item.Category,
		Country:     item.Country,
		Custom:      true,
	}, nil
}

// ListWizards pages through stored drafts, optionally filtered by kind.
// Step payloads are omitted; the listing is an administrative overview.
func (w *WizardService) ListWizards(ctx context.Context, kind string, page, pageSize int) ([]response_models.WizardResponse, error) {
	drafts, err := w.draftRepo.List(ctx, kind, page, pageSize)
	if err != nil {
		log.Printf("Error listing wizard drafts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	wizards := make([]response_models.WizardResponse, 0, len(drafts))
	for i := range drafts {
		steps, err := StepSequence(drafts[i].Kind, drafts[i].TourType)
		if err != nil {
			log.Printf("Skipping draft %s with unrecognized shape: %v", drafts[i].ID, err)
			continue
		}
		wizards = append(wizards, wizardResponse(&drafts[i], steps, nil))
	}
	return wizards, nil
}

// DeleteWizard abandons a draft: the row is soft-deleted and any pending
// IBAN verification state goes with it.
func (w *WizardService) DeleteWizard(ctx context.Context, id string) error {
	draft, err := w.draftRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching wizard draft %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	if draft == nil {
		return utils.ErrDraftNotFound
	}

	if err := w.draftRepo.Delete(ctx, draft.ID); err != nil {
		log.Printf("Error deleting wizard draft %s: %v", id, err)
		return utils.ErrDatabaseError
	}

	w.verifications.Reset(id)
	return nil
}

// ----- internals -----

func (w *WizardService) loadDraft(ctx context.Context, id string) (*db_models.WizardDraft, []string, map[string]json.RawMessage, error) {
	draft, err := w.draftRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching wizard draft %s: %v", id, err)
		return nil, nil, nil, utils.ErrDatabaseError
	}
	if draft == nil {
		return nil, nil, nil, utils.ErrDraftNotFound
	}

	steps, err := StepSequence(draft.Kind, draft.TourType)
	if err != nil {
		return nil, nil, nil, err
	}

	stepData := map[string]json.RawMessage{}
	if len(draft.Steps) > 0 {
		if err := json.Unmarshal(draft.Steps, &stepData); err != nil {
			log.Printf("Error decoding steps for wizard %s: %v", draft.ID, err)
			stepData = map[string]json.RawMessage{}
		}
	}

	return draft, steps, stepData, nil
}

func (w *WizardService) storeSteps(ctx context.Context, draft *db_models.WizardDraft, stepData map[string]json.RawMessage) error {
	raw, err := json.Marshal(stepData)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}
	draft.Steps = raw

	if err := w.draftRepo.Update(ctx, draft); err != nil {
		log.Printf("Error saving wizard draft %s: %v", draft.ID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

// prepareStepPayload decodes, normalizes, and validates a step payload.
// Returns the payload to store plus field errors. Malformed JSON is a
// hard error, not a field error.
func (w *WizardService) prepareStepPayload(draft *db_models.WizardDraft, step string, payload json.RawMessage) (json.RawMessage, map[string]string, error) {
	switch step {
	case StepBasic:
		var basic request_models.BasicInformation
		if err := json.Unmarshal(payload, &basic); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		return payload, validateBasicInformation(basic), nil

	case StepDetails:
		var details request_models.TourDetails
		if err := json.Unmarshal(payload, &details); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		details.Itinerary = renumberItineraryDays(details.Itinerary)
		normalized, err := json.Marshal(details)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal details step: %w", err)
		}
		return normalized, validateTourDetails(details, draft.TourType), nil

	case StepMeals:
		var meals request_models.MealDetails
		if err := json.Unmarshal(payload, &meals); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		return payload, validateMealDetails(meals), nil

	case StepPricing:
		var pricing request_models.PricingPolicy
		if err := json.Unmarshal(payload, &pricing); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		return payload, validatePricingPolicy(pricing), nil

	case StepIdentification:
		var ident request_models.Identification
		if err := json.Unmarshal(payload, &ident); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		return payload, validateIdentification(ident), nil

	case StepLanguage:
		var langs request_models.LanguageStep
		if err := json.Unmarshal(payload, &langs); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		return payload, validateLanguageStep(langs), nil

	case StepServices:
		var svcs request_models.ServicesStep
		if err := json.Unmarshal(payload, &svcs); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		return payload, validateServicesStep(svcs), nil

	case StepPayment:
		var pay request_models.PaymentStep
		if err := json.Unmarshal(payload, &pay); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		// Any edit that moves the IBAN away from the last verified
		// value drops the verified status immediately.
		if rec, ok := w.verifications.Get(draft.ID.String()); ok && rec.LastVerifiedIban != pay.Iban {
			w.verifications.Reset(draft.ID.String())
		}
		return payload, validatePaymentStep(pay), nil

	case StepAccount:
		var acct request_models.AccountStep
		if err := json.Unmarshal(payload, &acct); err != nil {
			return nil, nil, utils.ErrMalformedPayload
		}
		return payload, validateAccountStep(acct), nil

	default:
		return nil, nil, utils.ErrUnknownStep
	}
}

// validateSavedStep re-runs a step's validation from its stored payload.
// A step with no saved data fails with a single synthetic error.
func (w *WizardService) validateSavedStep(draft *db_models.WizardDraft, step string, stepData map[string]json.RawMessage) map[string]string {
	raw, ok := stepData[step]
	if !ok {
		return map[string]string{"_step": "Complete this step before continuing"}
	}

	_, fieldErrors, err := w.prepareStepPayload(draft, step, raw)
	if err != nil {
		return map[string]string{"_step": "Saved step data is unreadable"}
	}

	// The payment step is only submittable once the IBAN in the field
	// has itself been confirmed by the backend.
	if step == StepPayment {
		rec, ok := w.verifications.Get(draft.ID.String())
		if !ok || rec.State != mem.IbanVerified {
			if fieldErrors == nil {
				fieldErrors = map[string]string{}
			}
			fieldErrors["iban"] = "IBAN must be verified before continuing"
		}
	}

	return fieldErrors
}

func (w *WizardService) publish(ctx context.Context, draft *db_models.WizardDraft, stepData map[string]json.RawMessage, current string) (response_models.NextResult, error) {
	// Re-validate every step; publish reads the terminal value of all
	// of them, not just the current one.
	steps, _ := StepSequence(draft.Kind, draft.TourType)
	for _, step := range steps {
		if errs := w.validateSavedStep(draft, step, stepData); len(errs) > 0 {
			return response_models.NextResult{
				Advanced:    false,
				Step:        step,
				StepIndex:   draft.StepIndex,
				FieldErrors: errs,
			}, nil
		}
	}

	switch draft.Kind {
	case db_models.WizardKindTour:
		objectID, err := w.tours.PublishTour(ctx, draft, stepData)
		if err != nil {
			return response_models.NextResult{}, err
		}
		return response_models.NextResult{
			Published: true,
			Step:      current,
			StepIndex: draft.StepIndex,
			ObjectID:  objectID,
		}, nil

	case db_models.WizardKindSignup:
		objectID, token, err := w.signups.PublishSignup(ctx, draft, stepData)
		if err != nil {
			return response_models.NextResult{}, err
		}
		return response_models.NextResult{
			Published: true,
			Step:      current,
			StepIndex: draft.StepIndex,
			ObjectID:  objectID,
			Token:     token,
		}, nil

	default:
		return response_models.NextResult{}, utils.ErrUnknownWizardKind
	}
}

// renumberItineraryDays reassigns day keys to day1..dayN ascending with
// no gaps, so deleting a day from the middle keeps labels consistent.
func renumberItineraryDays(itinerary map[string][]request_models.ItineraryItem) map[string][]request_models.ItineraryItem {
	if len(itinerary) == 0 {
		return itinerary
	}

	renumbered := make(map[string][]request_models.ItineraryItem, len(itinerary))
	for i, key := range sortedDayKeys(itinerary) {
		renumbered[fmt.Sprintf("day%d", i+1)] = itinerary[key]
	}
	return renumbered
}

func wizardResponse(draft *db_models.WizardDraft, steps []string, stepData map[string]json.RawMessage) response_models.WizardResponse {
	index := draft.StepIndex
	if index > len(steps)-1 {
		index = len(steps) - 1
	}

	return response_models.WizardResponse{
		ID:        draft.ID.String(),
		Kind:      draft.Kind,
		TourType:  draft.TourType,
		Steps:     steps,
		StepIndex: index,
		Step:      steps[index],
		StepData:  stepData,
	}
}
