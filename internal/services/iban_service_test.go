package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simsem/internal/models/db_models"
	"simsem/internal/models/request_models"
	mem "simsem/pkg/memcache"
	"simsem/pkg/utils"
)

func signupDraftWithIban(t *testing.T, repo *fakeDraftRepo, iban string) string {
	t.Helper()
	steps := map[string]json.RawMessage{}
	if iban != "" {
		steps[StepPayment] = mustJSON(t, request_models.PaymentStep{
			AccountHolder: "Leila Haddad",
			BankName:      "Housing Bank",
			Iban:          iban,
		})
	}
	raw, err := json.Marshal(steps)
	require.NoError(t, err)

	draft := &db_models.WizardDraft{
		Kind:  db_models.WizardKindSignup,
		Steps: raw,
	}
	_, err = repo.Create(context.Background(), draft)
	require.NoError(t, err)
	return draft.ID.String()
}

func TestIbanVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("successful verification canonicalizes the draft iban", func(t *testing.T) {
		repo := newFakeDraftRepo()
		store := mem.NewVerificationStates()
		backend := &fakeParse{functionResult: ibanFunctionResult{
			Valid:            true,
			Iban:             "JO94CBJO0010000000000131000302",
			CountryCode:      "JO",
			Bban:             "CBJO0010000000000131000302",
			ElectronicFormat: "JO94CBJO0010000000000131000302",
		}}
		service := NewIbanService(repo, store, backend)

		draftID := signupDraftWithIban(t, repo, "jo94 cbjo 0010 0000 0000 0131 000302")

		status, err := service.Verify(ctx, draftID)
		require.NoError(t, err)
		assert.Equal(t, string(mem.IbanVerified), status.State)
		assert.Equal(t, "JO94CBJO0010000000000131000302", status.LastVerifiedIban)
		assert.Equal(t, "JO", status.CountryCode)

		require.Len(t, backend.functionCalls, 1)
		params, ok := backend.functionCalls[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "jo94 cbjo 0010 0000 0000 0131 000302", params["iban"])

		// The draft's payment step now holds the canonical form.
		draft, err := repo.GetByID(ctx, draftID)
		require.NoError(t, err)
		var stepData map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(draft.Steps, &stepData))
		var pay request_models.PaymentStep
		require.NoError(t, json.Unmarshal(stepData[StepPayment], &pay))
		assert.Equal(t, "JO94CBJO0010000000000131000302", pay.Iban)
	})

	t.Run("backend rejection lands in failed", func(t *testing.T) {
		repo := newFakeDraftRepo()
		store := mem.NewVerificationStates()
		backend := &fakeParse{functionResult: ibanFunctionResult{Valid: false}}
		service := NewIbanService(repo, store, backend)

		draftID := signupDraftWithIban(t, repo, "XX00BAD")

		status, err := service.Verify(ctx, draftID)
		require.NoError(t, err)
		assert.Equal(t, string(mem.IbanFailed), status.State)
		assert.Equal(t, "IBAN could not be verified", status.FailureReason)
	})

	t.Run("backend error lands in failed", func(t *testing.T) {
		repo := newFakeDraftRepo()
		store := mem.NewVerificationStates()
		backend := &fakeParse{functionErr: errors.New("timeout")}
		service := NewIbanService(repo, store, backend)

		draftID := signupDraftWithIban(t, repo, "JO94CBJO0010000000000131000302")

		status, err := service.Verify(ctx, draftID)
		require.NoError(t, err)
		assert.Equal(t, string(mem.IbanFailed), status.State)

		rec, ok := store.Get(draftID)
		assert.True(t, ok)
		assert.Equal(t, mem.IbanFailed, rec.State)
	})

	t.Run("empty iban is rejected before any backend call", func(t *testing.T) {
		repo := newFakeDraftRepo()
		store := mem.NewVerificationStates()
		backend := &fakeParse{}
		service := NewIbanService(repo, store, backend)

		draftID := signupDraftWithIban(t, repo, "")

		_, err := service.Verify(ctx, draftID)
		assert.ErrorIs(t, err, utils.ErrIbanEmpty)
		assert.Empty(t, backend.functionCalls)
	})

	t.Run("unknown draft", func(t *testing.T) {
		service := NewIbanService(newFakeDraftRepo(), mem.NewVerificationStates(), &fakeParse{})
		_, err := service.Verify(ctx, "2f9f9a54-8f6f-4b5e-9f0f-000000000000")
		assert.ErrorIs(t, err, utils.ErrDraftNotFound)
	})
}

func TestIbanStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDraftRepo()
	store := mem.NewVerificationStates()
	service := NewIbanService(repo, store, &fakeParse{})

	draftID := signupDraftWithIban(t, repo, "JO94CBJO0010000000000131000302")

	t.Run("defaults to idle", func(t *testing.T) {
		status, err := service.Status(ctx, draftID)
		require.NoError(t, err)
		assert.Equal(t, string(mem.IbanIdle), status.State)
	})

	t.Run("reflects the stored record", func(t *testing.T) {
		store.Put(draftID, mem.VerificationRecord{
			State:            mem.IbanVerified,
			LastVerifiedIban: "JO94CBJO0010000000000131000302",
		}, verificationTTL)

		status, err := service.Status(ctx, draftID)
		require.NoError(t, err)
		assert.Equal(t, string(mem.IbanVerified), status.State)
		assert.Equal(t, "JO94CBJO0010000000000131000302", status.LastVerifiedIban)
	})
}
