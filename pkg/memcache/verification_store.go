package mem

import (
	"sync"
	"time"
)

type IbanState string

const (
	IbanIdle      IbanState = "idle"
	IbanVerifying IbanState = "verifying"
	IbanVerified  IbanState = "verified"
	IbanFailed    IbanState = "failed"
)

// VerificationRecord mirrors the verification state of one wizard draft.
// Verified is only meaningful while the draft's IBAN text equals
// LastVerifiedIban; the service resets the record on any divergence.
type VerificationRecord struct {
	State            IbanState
	LastVerifiedIban string
	CountryCode      string
	Bban             string
	ElectronicFormat string
	FailureReason    string
}

type VerificationStore interface {
	Get(draftID string) (VerificationRecord, bool)
	Put(draftID string, rec VerificationRecord, ttl time.Duration)
	Reset(draftID string)
}

type verificationEntry struct {
	rec       VerificationRecord
	expiresAt time.Time
}

type VerificationStates struct {
	mu   sync.RWMutex
	data map[string]verificationEntry
}

func NewVerificationStates() *VerificationStates {
	return &VerificationStates{
		data: make(map[string]verificationEntry),
	}
}

func (s *VerificationStates) Get(draftID string) (VerificationRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[draftID]
	if !ok || time.Now().After(e.expiresAt) {
		return VerificationRecord{State: IbanIdle}, false
	}
	return e.rec, true
}

func (s *VerificationStates) Put(draftID string, rec VerificationRecord, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[draftID] = verificationEntry{
		rec:       rec,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *VerificationStates) Reset(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, draftID)
}
