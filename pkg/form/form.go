// Package form reads flat request parameters from either an HTML form or a
// JSON object body.
package form

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type Values map[string]string

// Read collects body parameters. JSON numbers and strings are both accepted.
func Read(c echo.Context) (Values, error) {
	out := Values{}
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		var raw map[string]any
		if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		for k, v := range raw {
			switch t := v.(type) {
			case string:
				out[k] = t
			case float64:
				out[k] = strconv.FormatFloat(t, 'f', -1, 64)
			case bool:
				out[k] = strconv.FormatBool(t)
			}
		}
		return out, nil
	}

	params, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	for k, vs := range params {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out, nil
}

func (v Values) String(key, def string) string {
	if s, ok := v[key]; ok {
		return s
	}
	return def
}

// Float parses a required numeric parameter. NaN and infinities are rejected.
func (v Values) Float(key string) (float64, error) {
	s, ok := v[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be numeric", key)
	}
	return f, nil
}

// Floats parses several required parameters, stopping at the first error.
func (v Values) Floats(keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		f, err := v.Float(k)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
