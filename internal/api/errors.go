package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/demo-api/internal/api/shared"
	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/store"
)

// Client-facing messages.
const (
	MessageMalformedBody     = "Request body is invalid or malformed"
	MessageUnexpectedError   = "An unexpected error occurred"
	MessageUsernameExists    = "Username already exists"
	MessageUserRegistered    = "User registered"
	MessageLoginSuccessful   = "Login successful"
	MessageInvalidCredential = "Invalid username or password"
	MessageRouteNotFound     = "No handler found for this path"
	MessageMethodNotAllowed  = "Request method is not supported for this path"
)

// ErrorClass is the outcome of classifying a handler error.
type ErrorClass struct {
	Status  int
	Message string
}

// ClassifyError maps an error to the status code and client message of the
// error envelope. Precedence: validation, malformed body, not found, anything
// else.
func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrorClass{Status: http.StatusInternalServerError, Message: MessageUnexpectedError}
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return ErrorClass{Status: http.StatusBadRequest, Message: validationErr.Error()}
	}

	if errors.Is(err, shared.ErrMalformedBody) {
		return ErrorClass{Status: http.StatusBadRequest, Message: MessageMalformedBody}
	}

	if store.IsNotFoundError(err) {
		return ErrorClass{Status: http.StatusNotFound, Message: notFoundMessage(err)}
	}

	return ErrorClass{Status: http.StatusInternalServerError, Message: err.Error()}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrCourseNotFound):
		return "Course not found"
	case errors.Is(err, store.ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, store.ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, store.ErrStudentNotFound):
		return "Student not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	default:
		return "Resource not found"
	}
}

// HandleError writes the error envelope for err. It is the single funnel for
// every failure raised by a handler, including recovered panics.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	class := ClassifyError(err)
	if class.Status >= http.StatusInternalServerError {
		shared.RespondWithErrorAndLog(w, r, class.Status, class.Message, err)
		return
	}
	shared.RespondWithError(w, r, class.Status, class.Message)
}
