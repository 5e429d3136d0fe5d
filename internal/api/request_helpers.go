package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/demo-api/internal/api/shared"
)

// idParam is the chi URL parameter holding a resource identity.
const idParam = "id"

// ErrInvalidPathID reports a path identity that is not an integer. It is
// neither a body constraint nor a malformed body, so it is classified as an
// unexpected failure.
var ErrInvalidPathID = errors.New("failed to convert path variable 'id' to a number")

// getPathID extracts the numeric identity from the URL path.
func getPathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, idParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPathID, raw)
	}
	return id, nil
}

// decodeAndValidate decodes the body into v and runs its validation.
// Decoding failures take precedence over validation failures.
func decodeAndValidate(r *http.Request, v shared.Validator) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		return err
	}
	return shared.ValidateRequest(v)
}
