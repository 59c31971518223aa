package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_OmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "Booking not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"Booking not found"}`, rec.Body.String())
}

func TestRespondPaginated(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondPaginated(rec, []int{1, 2}, map[string]int{"total": 2})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 2)
	assert.NotNil(t, body["pagination"])
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Something went wrong!"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ann","extra":1}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "ann", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=3&limit=abc", nil)

	page, err := QueryInt(r, "page")
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	_, err = QueryInt(r, "limit")
	assert.Error(t, err)

	missing, err := QueryInt(r, "absent")
	require.NoError(t, err)
	assert.Zero(t, missing)
}
