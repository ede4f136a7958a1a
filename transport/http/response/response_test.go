package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chefbook/shared/failure"
	"chefbook/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError_Failure(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithError(rec, failure.InvalidTransition("completed is terminal"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "completed is terminal", body["error"])
	assert.Equal(t, "invalid_transition", body["kind"])
}

func TestWithError_HidesForeignErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithError(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"b-1"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
