package form

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body, contentType string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRead_Form(t *testing.T) {
	body := url.Values{"temp": {" 26.5 "}, "stage": {"Flowering"}}.Encode()
	v, err := Read(newContext(body, echo.MIMEApplicationForm))
	require.NoError(t, err)

	f, err := v.Float("temp")
	require.NoError(t, err)
	assert.Equal(t, 26.5, f)
	assert.Equal(t, "Flowering", v.String("stage", "Vegetative"))
	assert.Equal(t, "Balanced NPK", v.String("fert_type", "Balanced NPK"))
}

func TestRead_JSON(t *testing.T) {
	v, err := Read(newContext(`{"temp":25,"humid":"78","flag":true,"nested":{"a":1}}`, echo.MIMEApplicationJSONCharsetUTF8))
	require.NoError(t, err)

	fs, err := v.Floats("temp", "humid")
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 78}, fs)
	_, ok := v["nested"]
	assert.False(t, ok)
}

func TestRead_BadJSON(t *testing.T) {
	_, err := Read(newContext(`{"temp":`, echo.MIMEApplicationJSON))
	assert.ErrorContains(t, err, "invalid json")
}

func TestFloat_Errors(t *testing.T) {
	v := Values{"temp": "warm"}
	_, err := v.Float("temp")
	assert.EqualError(t, err, "temp must be numeric")
	_, err = v.Float("humid")
	assert.EqualError(t, err, "humid is required")
	_, err = v.Floats("temp", "humid")
	assert.Error(t, err)
}

func TestFloat_RejectsNonFinite(t *testing.T) {
	tests := []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity", "1e999"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := Values{"temp": in}.Float("temp")
			assert.EqualError(t, err, "temp must be numeric")
		})
	}
}
