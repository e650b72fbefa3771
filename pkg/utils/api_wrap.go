package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

// RespondValidation reports per-field validation errors without advancing
// the wizard. The field map rides in Data so clients can attach messages
// to inputs.
func RespondValidation(c *gin.Context, fieldErrors map[string]string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Status:  "error",
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		TraceID: traceID.(string),
		Data:    gin.H{"field_errors": fieldErrors},
	})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID, _ := c.Get("trace_id")

	respond := func(code int, message string) {
		c.JSON(code, APIResponse{
			Status:  "error",
			Code:    code,
			Message: message,
			TraceID: traceID.(string),
		})
	}

	switch {
	case errors.Is(err, ErrDraftNotFound):
		respond(http.StatusNotFound, "Wizard draft not found")
	case errors.Is(err, ErrUnknownWizardKind):
		respond(http.StatusBadRequest, "Unknown wizard kind")
	case errors.Is(err, ErrUnknownTourType):
		respond(http.StatusBadRequest, "Unknown tour type")
	case errors.Is(err, ErrUnknownStep):
		respond(http.StatusBadRequest, "Unknown wizard step")
	case errors.Is(err, ErrStepNotSaved):
		respond(http.StatusBadRequest, "Step has no saved data")
	case errors.Is(err, ErrMalformedPayload):
		respond(http.StatusBadRequest, "Malformed step payload")
	case errors.Is(err, ErrIbanEmpty):
		respond(http.StatusBadRequest, "IBAN is required before verification")
	case errors.Is(err, ErrIbanNotVerified):
		respond(http.StatusBadRequest, "IBAN must be verified before submitting")
	case errors.Is(err, ErrUnsupportedFileType):
		respond(http.StatusBadRequest, "Unsupported file type")
	case errors.Is(err, ErrFileTooLarge):
		respond(http.StatusBadRequest, "File exceeds the maximum allowed size")
	case errors.Is(err, ErrBackendError):
		log.Printf("Backend error: %v", err)
		respond(http.StatusBadGateway, "Backend request failed")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		respond(http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		respond(http.StatusInternalServerError, "Internal server error")
	}
}
