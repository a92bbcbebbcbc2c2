package hvac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatingHandler(t *testing.T) {
	h := &Handler{}

	body := bytes.NewBufferString(`{"area_ft2":1000,"indoor_temp_f":70,"outdoor_temp_f":0,"occupancy":10}`)
	req := httptest.NewRequest(http.MethodPost, "/tools/hvac/heating", body)
	rec := httptest.NewRecorder()

	h.Heating(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res HeatingResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 28760.0, res.LoadBTUH)
}

func TestHeatingHandlerBadJSON(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodPost, "/tools/hvac/heating", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	h.Heating(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDuctHandler(t *testing.T) {
	h := &Handler{}

	body := bytes.NewBufferString(`{"airflow_cfm":1200}`)
	req := httptest.NewRequest(http.MethodPost, "/tools/hvac/duct", body)
	rec := httptest.NewRecorder()

	h.Duct(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res DuctResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 14.0, res.DiameterIn)
}
