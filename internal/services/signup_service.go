package services

import (
	"context"
	"encoding/json"
	"log"

	"simsem/internal/models/db_models"
	"simsem/internal/models/parse_models"
	"simsem/internal/models/request_models"
	mem "simsem/pkg/memcache"
	"simsem/pkg/utils"
)

type SignupService struct {
	backend       ParseAPI
	verifications mem.VerificationStore
	mail          IMailService
}

func NewSignupService(backend ParseAPI, verifications mem.VerificationStore, mail IMailService) *SignupService {
	return &SignupService{
		backend:       backend,
		verifications: verifications,
		mail:          mail,
	}
}

// PublishSignup turns the five signup steps into backend records: the
// ProviderPayment first, then the ServiceProvider referencing it. There
// is no rollback — a failure after the payment create leaves the payment
// record behind, and the caller gets one generic error.
func (s *SignupService) PublishSignup(ctx context.Context, draft *db_models.WizardDraft, steps map[string]json.RawMessage) (string, string, error) {
	var ident request_models.Identification
	var langs request_models.LanguageStep
	var svcs request_models.ServicesStep
	var pay request_models.PaymentStep
	var acct request_models.AccountStep

	if err := json.Unmarshal(steps[StepIdentification], &ident); err != nil {
		return "", "", utils.ErrMalformedPayload
	}
	if err := json.Unmarshal(steps[StepLanguage], &langs); err != nil {
		return "", "", utils.ErrMalformedPayload
	}
	if err := json.Unmarshal(steps[StepServices], &svcs); err != nil {
		return "", "", utils.ErrMalformedPayload
	}
	if err := json.Unmarshal(steps[StepPayment], &pay); err != nil {
		return "", "", utils.ErrMalformedPayload
	}
	if err := json.Unmarshal(steps[StepAccount], &acct); err != nil {
		return "", "", utils.ErrMalformedPayload
	}

	rec, ok := s.verifications.Get(draft.ID.String())
	if !ok || rec.State != mem.IbanVerified || rec.LastVerifiedIban != pay.Iban {
		return "", "", utils.ErrIbanNotVerified
	}

	payment, err := s.backend.CreateObject(ctx, "ProviderPayment", parse_models.ProviderPayment{
		AccountHolder: pay.AccountHolder,
		BankName:      pay.BankName,
		BankCountry:   pay.BankCountry,
		Iban:          pay.Iban,
		SwiftCode:     pay.SwiftCode,
		IbanVerified:  true,
	})
	if err != nil {
		log.Printf("Error creating ProviderPayment for draft %s: %v", draft.ID, err)
		return "", "", utils.ErrBackendError
	}

	passwordHash, err := utils.HashPassword(acct.Password)
	if err != nil {
		log.Printf("Error hashing account password for draft %s: %v", draft.ID, err)
		return "", "", utils.ErrBackendError
	}

	provider := parse_models.ServiceProvider{
		FirstName:      ident.FirstName,
		LastName:       ident.LastName,
		Email:          ident.Email,
		Phone:          ident.Phone,
		CountryCode:    ident.CountryCode,
		Country:        ident.Country,
		City:           ident.City,
		Languages:      providerLanguages(langs.Languages),
		Services:       svcs.Services,
		IDDocumentURLs: photoURLs(ident.IDDocument),
		PasswordHash:   passwordHash,
		PaymentID:      payment.ObjectID,
	}
	if ident.ProfilePhoto != nil {
		provider.ProfilePhotoURL = ident.ProfilePhoto.PreviewURL
	}

	created, err := s.backend.CreateObject(ctx, "ServiceProvider", provider)
	if err != nil {
		log.Printf("Error creating ServiceProvider for draft %s: %v", draft.ID, err)
		return "", "", utils.ErrBackendError
	}

	token, err := utils.CreateToken(created.ObjectID, "provider")
	if err != nil {
		log.Printf("Error issuing provider token for %s: %v", created.ObjectID, err)
		token = ""
	}

	// Confirmation mail is best effort; the application is already in.
	if s.mail != nil {
		if err := s.mail.SendApplicationReceived(acct.Email, ident.FirstName); err != nil {
			log.Printf("Error sending application-received mail to %s: %v", acct.Email, err)
		}
	}

	return created.ObjectID, token, nil
}

func providerLanguages(langs []request_models.Language) []parse_models.ProviderLanguage {
	out := make([]parse_models.ProviderLanguage, 0, len(langs))
	for _, l := range langs {
		out = append(out, parse_models.ProviderLanguage{
			Name:        l.Name,
			Proficiency: l.Proficiency,
		})
	}
	return out
}
