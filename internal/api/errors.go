package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/hijri/internal"
)

var (
	ErrInvalidDate       = errors.New("api: invalid date")
	ErrInvalidAdjustment = errors.New("api: invalid adjustment")
	ErrConflictingParams = errors.New("api: conflicting parameters")
)

// HTTPError is an error with an HTTP status and a machine-readable code.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error { return e.Err }

func badRequest(code string, err error) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Code: code, Message: err.Error(), Err: err}
}

// toHTTPError maps domain errors to responses. Unknown errors become 500
// without leaking their text.
func toHTTPError(err error) *HTTPError {
	var herr *HTTPError
	switch {
	case errors.As(err, &herr):
		return herr
	case errors.Is(err, ErrInvalidDate):
		return badRequest("invalid_date", err)
	case errors.Is(err, ErrInvalidAdjustment):
		return badRequest("invalid_adjustment", err)
	case errors.Is(err, ErrConflictingParams):
		return badRequest("conflicting_parameters", err)
	case errors.Is(err, internal.ErrUnknownProfile):
		return badRequest("unknown_profile", err)
	case errors.Is(err, internal.ErrInvalidLocale):
		return badRequest("invalid_locale", err)
	case errors.Is(err, internal.ErrInvalidLayout):
		return badRequest("invalid_preset", err)
	default:
		return &HTTPError{
			Status:  http.StatusInternalServerError,
			Code:    "internal_error",
			Message: http.StatusText(http.StatusInternalServerError),
			Err:     err,
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	herr := toHTTPError(err)
	writeJSON(w, herr.Status, herr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
