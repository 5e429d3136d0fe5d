package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedBody is returned when a request body is missing, is not JSON,
// or does not fit the target type.
var ErrMalformedBody = errors.New("request body is invalid or malformed")

// Validator is implemented by request and domain types that check themselves.
type Validator interface {
	Validate() error
}

// DecodeJSON decodes the request body into the given struct.
// An empty body, a literal null, syntax errors and type mismatches all wrap
// ErrMalformedBody. Unknown fields are ignored.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrMalformedBody)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w: null body", ErrMalformedBody)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

// ValidateRequest validates v when it implements Validator.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(Validator); ok {
		return validator.Validate()
	}
	return nil
}
