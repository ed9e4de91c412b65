package http

import (
	"errors"
	"net/http"
	"strings"

	"library-backend/internal/domain"
	"library-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

const maxBodyBytes = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// statusFor maps a domain error kind onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error": msg}. Unclassified errors are logged
// and replaced by a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg, ok := domain.PublicMessage(err)
	if !ok || status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads a JSON body of at most maxBodyBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.Validationf("request body must not exceed %d bytes", maxBodyBytes)
		}
		return domain.Validationf("request body must be valid JSON")
	}
	return nil
}

// requiredFieldsMessage is implemented by request bodies that describe
// their mandatory fields.
type requiredFieldsMessage interface {
	requiredMessage() string
}

// bind decodes and validates a request body.
func bind(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := decodeJSON(w, r, dst); err != nil {
		return err
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(dst, err)
	}
	return nil
}

func validationError(dst any, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domain.Validationf("invalid request")
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			if m, ok := dst.(requiredFieldsMessage); ok {
				return domain.Validationf("%s", m.requiredMessage())
			}
			return domain.Validationf("%s is required", fe.Field())
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "oneof":
		return domain.Validationf("invalid %s, it must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return domain.Validationf("%s must not be empty", fe.Field())
	case "gte":
		return domain.Validationf("%s must not be negative", fe.Field())
	}
	return domain.Validationf("invalid value for %s", fe.Field())
}
