package api

import (
	"encoding/json"
	"net/http"

	rlf "github.com/krazyTry/vyper-go/redeem_logic_farming"
)

type httpError struct {
	cause  error
	status int
}

func (e *httpError) Error() string {
	return e.cause.Error()
}

func (e *httpError) Unwrap() error {
	return e.cause
}

// BadRequest wraps cause as a 400 response.
func BadRequest(cause error) error {
	return &httpError{cause: cause, status: http.StatusBadRequest}
}

// HandlerFunc is an http.HandlerFunc that reports failure through its result.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// WrapHandlerFunc turns a HandlerFunc into an http.HandlerFunc. Engine error
// classes map to 400 and 422; anything else unclassified is a 500.
func WrapHandlerFunc(f HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := f(w, r)
		if err == nil {
			return
		}
		http.Error(w, err.Error(), statusOf(err))
	}
}

func statusOf(err error) int {
	if he, ok := err.(*httpError); ok {
		return he.status
	}
	switch {
	case rlf.InvalidInput.Has(err):
		return http.StatusBadRequest
	case rlf.MathError.Has(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

const JSONContentType = "application/json; charset=utf-8"

func WriteJSON(w http.ResponseWriter, obj interface{}) error {
	w.Header().Set("Content-Type", JSONContentType)
	return json.NewEncoder(w).Encode(obj)
}
