package response

import (
	"encoding/json"
	"net/http"

	"chefbook/shared/constant"
	"chefbook/shared/failure"
	"chefbook/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error carries the failure message and its kind so clients can branch without parsing text.
type Error struct {
	Error *string      `json:"error,omitempty"`
	Kind  failure.Kind `json:"kind,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message. Errors that are not failures are reported as internal
// without leaking their text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	kind := failure.GetKind(err)

	errMsg := http.StatusText(http.StatusInternalServerError)
	if kind != failure.KindInternal || code != http.StatusInternalServerError {
		errMsg = err.Error()
	}

	response(writer, code, Error{Error: &errMsg, Kind: kind})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
