package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vet-clinic/internal/domain/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	cases := map[string]Page{
		"/x":                     {Limit: 50},
		"/x?limit=10&offset=20":  {Limit: 10, Offset: 20},
		"/x?limit=500":           {Limit: 50},
		"/x?limit=-1&offset=-5":  {Limit: 50},
		"/x?limit=abc&offset=xx": {Limit: 50},
	}
	for url, want := range cases {
		r := httptest.NewRequest(http.MethodGet, url, nil)
		assert.Equal(t, want, ParsePage(r), url)
	}
}

func TestDecode(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
		Year int    `json:"approx_year_of_birth"`
	}

	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(""))
	assert.ErrorIs(t, Decode(r, &dst), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"approx_year_of_birth":"old"}`))
	var v *apperr.ValidationError
	require.True(t, errors.As(Decode(r, &dst), &v))
	assert.Equal(t, "approx_year_of_birth", v.Fields[0].Field)

	r = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"Milo"}`))
	require.NoError(t, Decode(r, &dst))
	assert.Equal(t, "Milo", dst.Name)
}

func TestDecodeFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
		Year int    `json:"approx_year_of_birth"`
	}

	require.NoError(t, DecodeFields(map[string]json.RawMessage{"name": json.RawMessage(`"Milo"`)}, &dst))
	assert.Equal(t, "Milo", dst.Name)

	var v *apperr.ValidationError
	require.True(t, errors.As(DecodeFields(map[string]json.RawMessage{"approx_year_of_birth": json.RawMessage(`"old"`)}, &dst), &v))
	assert.Equal(t, "approx_year_of_birth", v.Fields[0].Field)

	// un RawMessage corrupto no puede perderse en silencio
	err := DecodeFields(map[string]json.RawMessage{"name": json.RawMessage(`{"unterminated`)}, &dst)
	require.Error(t, err)
	assert.False(t, errors.As(err, &v))
}
