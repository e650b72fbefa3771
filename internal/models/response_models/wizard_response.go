package response_models

import "encoding/json"

type WizardResponse struct {
	ID        string                     `json:"id"`
	Kind      string                     `json:"kind"`
	TourType  string                     `json:"tour_type,omitempty"`
	Steps     []string                   `json:"steps"`
	StepIndex int                        `json:"step_index"`
	Step      string                     `json:"step"`
	StepData  map[string]json.RawMessage `json:"step_data,omitempty"`
}

type StepResult struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// NextResult reports the outcome of a "next" action: either a failed
// validation (stay on the step), a plain advance, or — on the last
// step — a publish.
type NextResult struct {
	Advanced    bool              `json:"advanced"`
	Published   bool              `json:"published"`
	Step        string            `json:"step"`
	StepIndex   int               `json:"step_index"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	ObjectID    string            `json:"object_id,omitempty"`
	Token       string            `json:"token,omitempty"`
}

type IbanStatusResponse struct {
	State            string `json:"state"`
	LastVerifiedIban string `json:"last_verified_iban,omitempty"`
	CountryCode      string `json:"country_code,omitempty"`
	FailureReason    string `json:"failure_reason,omitempty"`
}
