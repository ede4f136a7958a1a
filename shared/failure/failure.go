package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independently of its transport code.
type Kind string

const (
	KindBadRequest        Kind = "bad_request"
	KindValidation        Kind = "validation"
	KindInvalidTransition Kind = "invalid_transition"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindExternalService   Kind = "external_service"
	KindInternal          Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions", Kind: KindForbidden}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource", Kind: KindForbidden}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Kind:    KindBadRequest,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindBadRequest,
	}
}

// Validation returns a new Failure for a wizard step or payload whose validity predicate failed.
// The caller's state is left untouched.
func Validation(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Kind:    KindValidation,
	}
}

// InvalidTransition returns a new Failure for a lifecycle transition that is not permitted from the current state.
func InvalidTransition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindInvalidTransition,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
		Kind:    KindUnauthorized,
	}
}

// RoleNotPermitted returns an unauthorized Failure for an authenticated actor whose role may not perform the action.
func RoleNotPermitted(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Kind:    KindUnauthorized,
	}
}

// ExternalService returns a new Failure for a collaborator (storage, notification) that failed.
func ExternalService(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
			Kind:    KindExternalService,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Kind:    KindNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Kind:    KindConflict,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Kind:    KindForbidden,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface, KindInternal for foreign errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err carries a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	return GetKind(err) == kind
}
