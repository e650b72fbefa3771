package db_models

const (
	WizardKindTour   = "tour"
	WizardKindSignup = "signup"
)

// WizardDraft is one in-progress wizard. Step payloads are stored as a
// JSON document keyed by step name; StepIndex tracks the step the user
// is currently on within the fixed sequence for Kind.
type WizardDraft struct {
	BaseModel
	Kind      string
	TourType  string
	StepIndex int
	Steps     []byte `gorm:"type:jsonb"`
}
