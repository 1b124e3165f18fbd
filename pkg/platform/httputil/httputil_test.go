package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "mergington/pkg/domain-errors"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["message"])
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "not found maps to 404",
			err:        dErrors.New(dErrors.CodeNotFound, "Activity not found"),
			wantStatus: http.StatusNotFound,
			wantDetail: "Activity not found",
		},
		{
			name:       "already registered maps to 400",
			err:        dErrors.New(dErrors.CodeAlreadyRegistered, "michael@mergington.edu already signed up"),
			wantStatus: http.StatusBadRequest,
			wantDetail: "michael@mergington.edu already signed up",
		},
		{
			name:       "bad request maps to 400",
			err:        dErrors.New(dErrors.CodeBadRequest, "invalid request"),
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid request",
		},
		{
			name:       "domain error without message falls back to code",
			err:        dErrors.New(dErrors.CodeInternal, ""),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "internal_error",
		},
		{
			name:       "non-domain error maps to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}

func TestDomainCodeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, DomainCodeToHTTPStatus(dErrors.CodeNotFound))
	assert.Equal(t, http.StatusBadRequest, DomainCodeToHTTPStatus(dErrors.CodeAlreadyRegistered))
	assert.Equal(t, http.StatusBadRequest, DomainCodeToHTTPStatus(dErrors.CodeBadRequest))
	assert.Equal(t, http.StatusInternalServerError, DomainCodeToHTTPStatus(dErrors.CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, DomainCodeToHTTPStatus(dErrors.Code("mystery")))
}
