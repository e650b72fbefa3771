package utils

import "errors"

var (
	ErrDraftNotFound       = errors.New("wizard draft not found")
	ErrUnknownWizardKind   = errors.New("unknown wizard kind")
	ErrUnknownTourType     = errors.New("unknown tour type")
	ErrUnknownStep         = errors.New("unknown wizard step")
	ErrStepNotSaved        = errors.New("step has no saved data")
	ErrMalformedPayload    = errors.New("malformed step payload")
	ErrIbanEmpty           = errors.New("iban field is empty")
	ErrIbanNotVerified     = errors.New("iban has not been verified")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum size")
	ErrBackendError        = errors.New("backend request failed")
	ErrDatabaseError       = errors.New("database error")
)
