package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"simsem/internal/models/request_models"
	"simsem/internal/models/response_models"
	"simsem/internal/repositories"
	mem "simsem/pkg/memcache"
	"simsem/pkg/utils"
)

// Verification records outlive an editing session comfortably but do
// not pile up forever.
const verificationTTL = 24 * time.Hour

type IbanServiceInterface interface {
	Verify(ctx context.Context, draftID string) (response_models.IbanStatusResponse, error)
	Status(ctx context.Context, draftID string) (response_models.IbanStatusResponse, error)
}

type IbanService struct {
	draftRepo     repositories.DraftRepository
	verifications mem.VerificationStore
	backend       ParseAPI
}

func NewIbanService(draftRepo repositories.DraftRepository, verifications mem.VerificationStore, backend ParseAPI) IbanServiceInterface {
	return &IbanService{
		draftRepo:     draftRepo,
		verifications: verifications,
		backend:       backend,
	}
}

type ibanFunctionResult struct {
	Valid            bool   `json:"valid"`
	Iban             string `json:"iban"`
	CountryCode      string `json:"countryCode"`
	Bban             string `json:"bban"`
	ElectronicFormat string `json:"electronicFormat"`
}

// Verify runs the explicit user-triggered check: Idle/Failed → Verifying,
// then Verified (canonical IBAN written back into the draft) or Failed.
func (s *IbanService) Verify(ctx context.Context, draftID string) (response_models.IbanStatusResponse, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		log.Printf("Error fetching wizard draft %s: %v", draftID, err)
		return response_models.IbanStatusResponse{}, utils.ErrDatabaseError
	}
	if draft == nil {
		return response_models.IbanStatusResponse{}, utils.ErrDraftNotFound
	}

	stepData := map[string]json.RawMessage{}
	if len(draft.Steps) > 0 {
		if err := json.Unmarshal(draft.Steps, &stepData); err != nil {
			log.Printf("Error decoding steps for wizard %s: %v", draftID, err)
		}
	}

	var pay request_models.PaymentStep
	if raw, ok := stepData[StepPayment]; ok {
		if err := json.Unmarshal(raw, &pay); err != nil {
			return response_models.IbanStatusResponse{}, utils.ErrMalformedPayload
		}
	}
	if pay.Iban == "" {
		return response_models.IbanStatusResponse{}, utils.ErrIbanEmpty
	}

	s.verifications.Put(draftID, mem.VerificationRecord{State: mem.IbanVerifying}, verificationTTL)

	var result ibanFunctionResult
	err = s.backend.CallFunction(ctx, "verifyIban", map[string]interface{}{"iban": pay.Iban}, &result)
	if err != nil || !result.Valid {
		if err != nil {
			log.Printf("Error verifying IBAN for draft %s: %v", draftID, err)
		}
		rec := mem.VerificationRecord{
			State:         mem.IbanFailed,
			FailureReason: "IBAN could not be verified",
		}
		s.verifications.Put(draftID, rec, verificationTTL)
		return statusResponse(rec), nil
	}

	// The backend canonicalizes the IBAN; rewrite the field so the
	// verified flag and the literal field text stay in sync.
	pay.Iban = result.Iban
	if raw, err := json.Marshal(pay); err == nil {
		stepData[StepPayment] = raw
		if encoded, err := json.Marshal(stepData); err == nil {
			draft.Steps = encoded
			if err := s.draftRepo.Update(ctx, draft); err != nil {
				log.Printf("Error writing canonical IBAN for draft %s: %v", draftID, err)
			}
		}
	}

	rec := mem.VerificationRecord{
		State:            mem.IbanVerified,
		LastVerifiedIban: result.Iban,
		CountryCode:      result.CountryCode,
		Bban:             result.Bban,
		ElectronicFormat: result.ElectronicFormat,
	}
	s.verifications.Put(draftID, rec, verificationTTL)

	return statusResponse(rec), nil
}

func (s *IbanService) Status(ctx context.Context, draftID string) (response_models.IbanStatusResponse, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		log.Printf("Error fetching wizard draft %s: %v", draftID, err)
		return response_models.IbanStatusResponse{}, utils.ErrDatabaseError
	}
	if draft == nil {
		return response_models.IbanStatusResponse{}, utils.ErrDraftNotFound
	}

	rec, _ := s.verifications.Get(draftID)
	return statusResponse(rec), nil
}

func statusResponse(rec mem.VerificationRecord) response_models.IbanStatusResponse {
	return response_models.IbanStatusResponse{
		State:            string(rec.State),
		LastVerifiedIban: rec.LastVerifiedIban,
		CountryCode:      rec.CountryCode,
		FailureReason:    rec.FailureReason,
	}
}
